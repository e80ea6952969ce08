package repository

import (
	"context"

	"gorm.io/gorm"

	"rockschool/internal/model"
)

// InstructorRepository defines instructor listing persistence operations.
type InstructorRepository interface {
	Create(ctx context.Context, listing *model.InstructorListing) error
	// List returns all listings in insertion order.
	List(ctx context.Context) ([]model.InstructorListing, error)
}

type instructorRepository struct {
	db *gorm.DB
}

// NewInstructorRepository builds a GORM-backed repository.
func NewInstructorRepository(db *gorm.DB) InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) Create(ctx context.Context, listing *model.InstructorListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *instructorRepository) List(ctx context.Context) ([]model.InstructorListing, error) {
	var listings []model.InstructorListing
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
