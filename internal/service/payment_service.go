package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rockschool/internal/errors"
	"rockschool/internal/model"
	"rockschool/internal/payments"
	"rockschool/internal/repository"
)

var minorUnitFactor = decimal.NewFromInt(100)

// AmountMinor converts a decimal price into the provider's integer
// minor-unit amount: price × 100, truncated.
func AmountMinor(price decimal.Decimal) int64 {
	return price.Mul(minorUnitFactor).Truncate(0).IntPart()
}

// SettlementResult reports the two settlement writes independently.
type SettlementResult struct {
	InsertedID   uuid.UUID `json:"insertedId"`
	DeletedCount int64     `json:"deletedCount"`
	DeleteError  string    `json:"deleteError,omitempty"`
}

// PaymentService handles charge authorization and settlement.
type PaymentService interface {
	// CreateIntent requests a charge authorization for the price and returns
	// the provider's client secret. Provider failures abort the flow; nothing
	// is written.
	CreateIntent(ctx context.Context, price decimal.Decimal) (string, error)
	// Settle writes one payment record, then removes the settled cart items.
	// The record is not rolled back if the delete fails, and neither write
	// is retried.
	Settle(ctx context.Context, email string, price decimal.Decimal, transactionID string, cartItemIDs []uuid.UUID) (*SettlementResult, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	provider    payments.Provider
	currency    string
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	provider payments.Provider,
	currency string,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		provider:    provider,
		currency:    currency,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	if price.IsNegative() {
		return "", errors.ErrInvalidPrice
	}

	intent, err := s.provider.CreateIntent(ctx, AmountMinor(price), s.currency)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

func (s *paymentService) Settle(ctx context.Context, email string, price decimal.Decimal, transactionID string, cartItemIDs []uuid.UUID) (*SettlementResult, error) {
	// TODO: the record insert and the cart delete are two separate writes
	// with no transaction; a crash between them leaves settled items in
	// the cart.
	ids := make([]string, 0, len(cartItemIDs))
	for _, id := range cartItemIDs {
		ids = append(ids, id.String())
	}

	record := &model.PaymentRecord{
		Email:         email,
		Amount:        price,
		TransactionID: transactionID,
		CartItemIDs:   ids,
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create payment record: %w", err)
	}

	result := &SettlementResult{InsertedID: record.ID}
	deleted, err := s.cartRepo.DeleteByIDs(ctx, cartItemIDs)
	result.DeletedCount = deleted
	if err != nil {
		result.DeleteError = err.Error()
	}
	return result, nil
}
