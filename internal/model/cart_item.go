package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a class a user added to their cart. Enough of the listing is
// denormalized to render the cart without a join.
type CartItem struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Email      string          `json:"email" gorm:"size:255;index;not null"`
	ClassID    uuid.UUID       `json:"classId" gorm:"type:char(36);index;not null"`
	ClassName  string          `json:"className" gorm:"size:255"`
	ClassImage string          `json:"classImage" gorm:"size:512"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(20,2)"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
