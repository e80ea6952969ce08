package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rockschool/internal/errors"
	"rockschool/internal/model"
	"rockschool/internal/repository"
)

// CartService exposes cart operations.
type CartService interface {
	// AddItem inserts a cart item after verifying both the owning user and
	// the referenced class listing exist. Nothing is written on violation.
	AddItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) (int64, error)
}

type cartService struct {
	carts   repository.CartRepository
	classes repository.ClassRepository
	users   repository.UserRepository
}

// NewCartService builds a CartService.
func NewCartService(
	carts repository.CartRepository,
	classes repository.ClassRepository,
	users repository.UserRepository,
) CartService {
	return &cartService{carts: carts, classes: classes, users: users}
}

func (s *cartService) AddItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if _, err := s.users.FindByEmail(ctx, item.Email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	listing, err := s.classes.FindByID(ctx, item.ClassID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClassNotFound
		}
		return nil, err
	}

	// Denormalize the listing so the cart renders without a join.
	if item.ClassName == "" {
		item.ClassName = listing.Name
	}
	if item.ClassImage == "" {
		item.ClassImage = listing.Image
	}
	if item.Price.IsZero() {
		item.Price = listing.Price
	}

	if err := s.carts.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	return s.carts.ListByEmail(ctx, email)
}

func (s *cartService) RemoveItem(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.carts.DeleteByID(ctx, id)
}
