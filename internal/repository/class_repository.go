package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rockschool/internal/model"
)

// ClassRepository defines class listing persistence operations.
type ClassRepository interface {
	Create(ctx context.Context, listing *model.ClassListing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ClassListing, error)
	// List returns all listings in insertion order.
	List(ctx context.Context) ([]model.ClassListing, error)
	ListByInstructor(ctx context.Context, email string) ([]model.ClassListing, error)
	// Replace fully replaces a listing, creating it when absent.
	Replace(ctx context.Context, listing *model.ClassListing) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository builds a GORM-backed repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, listing *model.ClassListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ClassListing, error) {
	var listing model.ClassListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *classRepository) List(ctx context.Context) ([]model.ClassListing, error) {
	var listings []model.ClassListing
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *classRepository) ListByInstructor(ctx context.Context, email string) ([]model.ClassListing, error) {
	var listings []model.ClassListing
	if err := r.db.WithContext(ctx).Where("instructor_email = ?", email).
		Order("created_at ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *classRepository) Replace(ctx context.Context, listing *model.ClassListing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClassListing{})
	return res.RowsAffected, res.Error
}
