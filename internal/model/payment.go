package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRecord captures a settled payment and the cart item ids it cleared.
type PaymentRecord struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Email         string          `json:"email" gorm:"size:255;index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	TransactionID string          `json:"transactionId" gorm:"size:255"`
	CartItemIDs   []string        `json:"cartItems" gorm:"serializer:json;type:json"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
