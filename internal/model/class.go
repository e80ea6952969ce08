package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClassListing is a bookable class offered by an instructor.
type ClassListing struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string          `json:"name" gorm:"size:255;not null"`
	Image            string          `json:"image" gorm:"size:512"`
	AvailableSeats   int             `json:"availableSeats" gorm:"not null"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	InstructorName   string          `json:"instructorName" gorm:"size:255"`
	InstructorEmail  string          `json:"instructorEmail" gorm:"size:255;index;not null"`
	EnrolledStudents int             `json:"enrolledStudent" gorm:"not null;default:0"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *ClassListing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
