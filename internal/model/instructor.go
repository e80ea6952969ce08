package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstructorListing is a public instructor profile, read-only through the API.
type InstructorListing struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	Email            string    `json:"email" gorm:"size:255;index"`
	Image            string    `json:"image" gorm:"size:512"`
	NumberOfClasses  int       `json:"numberOfClasses"`
	EnrolledStudents int       `json:"enrolledStudent" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *InstructorListing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
