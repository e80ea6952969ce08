package repository

import (
	"context"

	"gorm.io/gorm"

	"rockschool/internal/model"
)

// PaymentRepository defines payment record persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, record *model.PaymentRecord) error
	ListByEmail(ctx context.Context, email string) ([]model.PaymentRecord, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository builds a GORM-backed repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, record *model.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.PaymentRecord, error) {
	var records []model.PaymentRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).
		Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
