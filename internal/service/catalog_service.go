package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rockschool/internal/cache"
	"rockschool/internal/errors"
	"rockschool/internal/model"
	"rockschool/internal/repository"
)

const (
	listingCacheTTL    = time.Minute
	classListKey       = "catalog:classes:sorted"
	instructorsListKey = "catalog:instructors:sorted"
)

// CatalogService exposes class, instructor, and review operations. Listings
// are always served sorted by enrollment count, descending.
type CatalogService interface {
	ListClasses(ctx context.Context) ([]model.ClassListing, error)
	GetClass(ctx context.Context, id uuid.UUID) (*model.ClassListing, error)
	ListClassesByInstructor(ctx context.Context, email string) ([]model.ClassListing, error)
	CreateClass(ctx context.Context, listing *model.ClassListing) (*model.ClassListing, error)
	ReplaceClass(ctx context.Context, requester string, listing *model.ClassListing) error
	DeleteClass(ctx context.Context, requester string, id uuid.UUID) (int64, error)
	ListInstructors(ctx context.Context) ([]model.InstructorListing, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type catalogService struct {
	classes     repository.ClassRepository
	instructors repository.InstructorRepository
	reviews     repository.ReviewRepository
	cache       *cache.Client
}

// NewCatalogService builds a CatalogService with repositories and cache.
func NewCatalogService(
	classes repository.ClassRepository,
	instructors repository.InstructorRepository,
	reviews repository.ReviewRepository,
	cache *cache.Client,
) CatalogService {
	return &catalogService{
		classes:     classes,
		instructors: instructors,
		reviews:     reviews,
		cache:       cache,
	}
}

// sortClassesByEnrollment orders listings by enrolled students descending.
// The sort is stable, so equal counts keep insertion order.
func sortClassesByEnrollment(items []model.ClassListing) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EnrolledStudents > items[j].EnrolledStudents
	})
}

func sortInstructorsByEnrollment(items []model.InstructorListing) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EnrolledStudents > items[j].EnrolledStudents
	})
}

func (s *catalogService) ListClasses(ctx context.Context) ([]model.ClassListing, error) {
	var cached []model.ClassListing
	if s.cache.GetJSON(ctx, classListKey, &cached) {
		return cached, nil
	}

	listings, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}
	sortClassesByEnrollment(listings)

	s.cache.SetJSON(ctx, classListKey, listings, listingCacheTTL)
	return listings, nil
}

func (s *catalogService) GetClass(ctx context.Context, id uuid.UUID) (*model.ClassListing, error) {
	listing, err := s.classes.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *catalogService) ListClassesByInstructor(ctx context.Context, email string) ([]model.ClassListing, error) {
	return s.classes.ListByInstructor(ctx, email)
}

func (s *catalogService) CreateClass(ctx context.Context, listing *model.ClassListing) (*model.ClassListing, error) {
	if err := s.classes.Create(ctx, listing); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, classListKey)
	return listing, nil
}

// ReplaceClass fully replaces a listing. Only the owning instructor may
// replace an existing one; an absent id is an upsert owned by the requester.
func (s *catalogService) ReplaceClass(ctx context.Context, requester string, listing *model.ClassListing) error {
	existing, err := s.classes.FindByID(ctx, listing.ID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil && existing.InstructorEmail != requester {
		return errors.ErrForbidden
	}
	if listing.InstructorEmail == "" {
		listing.InstructorEmail = requester
	}

	if err := s.classes.Replace(ctx, listing); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, classListKey)
	return nil
}

func (s *catalogService) DeleteClass(ctx context.Context, requester string, id uuid.UUID) (int64, error) {
	existing, err := s.classes.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if existing.InstructorEmail != requester {
		return 0, errors.ErrForbidden
	}

	deleted, err := s.classes.Delete(ctx, id)
	if err != nil {
		return deleted, err
	}
	_ = s.cache.Delete(ctx, classListKey)
	return deleted, nil
}

func (s *catalogService) ListInstructors(ctx context.Context) ([]model.InstructorListing, error) {
	var cached []model.InstructorListing
	if s.cache.GetJSON(ctx, instructorsListKey, &cached) {
		return cached, nil
	}

	listings, err := s.instructors.List(ctx)
	if err != nil {
		return nil, err
	}
	sortInstructorsByEnrollment(listings)

	s.cache.SetJSON(ctx, instructorsListKey, listings, listingCacheTTL)
	return listings, nil
}

func (s *catalogService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.List(ctx)
}
