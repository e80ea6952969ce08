package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rockschool/internal/errors"
	"rockschool/internal/model"
)

func TestCartService_AddItem(t *testing.T) {
	classID := uuid.New()
	listing := &model.ClassListing{
		ID:    classID,
		Name:  "Guitar Fundamentals",
		Image: "guitar.jpg",
		Price: decimal.NewFromFloat(49.99),
	}

	t.Run("valid references inserted with denormalized listing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com"}, nil)
		classRepo := new(MockClassRepository)
		classRepo.On("FindByID", mock.Anything, classID).Return(listing, nil)
		cartRepo := new(MockCartRepository)
		cartRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.CartItem")).Return(nil)

		svc := NewCartService(cartRepo, classRepo, userRepo)
		item, err := svc.AddItem(context.Background(), &model.CartItem{Email: "a@x.com", ClassID: classID})

		assert.NoError(t, err)
		assert.Equal(t, "Guitar Fundamentals", item.ClassName)
		assert.Equal(t, "guitar.jpg", item.ClassImage)
		assert.True(t, item.Price.Equal(listing.Price))
		cartRepo.AssertExpectations(t)
	})

	t.Run("unknown user writes nothing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
		cartRepo := new(MockCartRepository)

		svc := NewCartService(cartRepo, new(MockClassRepository), userRepo)
		item, err := svc.AddItem(context.Background(), &model.CartItem{Email: "nobody@x.com", ClassID: classID})

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		assert.Nil(t, item)
		cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown class writes nothing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com"}, nil)
		classRepo := new(MockClassRepository)
		classRepo.On("FindByID", mock.Anything, classID).Return(nil, gorm.ErrRecordNotFound)
		cartRepo := new(MockCartRepository)

		svc := NewCartService(cartRepo, classRepo, userRepo)
		item, err := svc.AddItem(context.Background(), &model.CartItem{Email: "a@x.com", ClassID: classID})

		assert.ErrorIs(t, err, errors.ErrClassNotFound)
		assert.Nil(t, item)
		cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	id := uuid.New()

	t.Run("existing id removes exactly one", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		cartRepo.On("DeleteByID", mock.Anything, id).Return(int64(1), nil)

		svc := NewCartService(cartRepo, new(MockClassRepository), new(MockUserRepository))
		deleted, err := svc.RemoveItem(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("absent id reports zero affected", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		cartRepo.On("DeleteByID", mock.Anything, id).Return(int64(0), nil)

		svc := NewCartService(cartRepo, new(MockClassRepository), new(MockUserRepository))
		deleted, err := svc.RemoveItem(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
