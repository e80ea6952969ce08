package repository

import (
	"context"

	"gorm.io/gorm"

	"rockschool/internal/model"
)

// ReviewRepository defines review persistence operations. Reviews are
// read-only through the API; Create exists for seeding.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
