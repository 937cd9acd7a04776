package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "decora/internal/errors"
	"decora/internal/model"
	"decora/internal/repository"
)

// The smaller showcase content types (gallery, testimonials, offerings,
// transformations) share the same thin CRUD shape and live together here.

// GalleryService exposes inspiration-gallery operations.
type GalleryService interface {
	List(ctx context.Context) ([]model.GalleryImage, error)
	Create(ctx context.Context, image *model.GalleryImage) (*model.GalleryImage, error)
	Update(ctx context.Context, image *model.GalleryImage) (*model.GalleryImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryService struct {
	repo repository.GalleryRepository
}

// NewGalleryService builds a GalleryService.
func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryService{repo: repo}
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryImage, error) {
	return s.repo.List(ctx)
}

func (s *galleryService) Create(ctx context.Context, image *model.GalleryImage) (*model.GalleryImage, error) {
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *galleryService) Update(ctx context.Context, image *model.GalleryImage) (*model.GalleryImage, error) {
	existing, err := s.repo.FindByID(ctx, image.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	image.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// TestimonialService exposes testimonial operations.
type TestimonialService interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	Update(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService builds a TestimonialService.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) List(ctx context.Context) ([]model.Testimonial, error) {
	return s.repo.List(ctx)
}

func (s *testimonialService) Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) Update(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	existing, err := s.repo.FindByID(ctx, testimonial.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	testimonial.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// OfferingService exposes operations on the studio's service offerings.
type OfferingService interface {
	List(ctx context.Context) ([]model.Offering, error)
	Create(ctx context.Context, offering *model.Offering) (*model.Offering, error)
	Update(ctx context.Context, offering *model.Offering) (*model.Offering, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type offeringService struct {
	repo repository.OfferingRepository
}

// NewOfferingService builds an OfferingService.
func NewOfferingService(repo repository.OfferingRepository) OfferingService {
	return &offeringService{repo: repo}
}

func (s *offeringService) List(ctx context.Context) ([]model.Offering, error) {
	return s.repo.List(ctx)
}

func (s *offeringService) Create(ctx context.Context, offering *model.Offering) (*model.Offering, error) {
	if err := s.repo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *offeringService) Update(ctx context.Context, offering *model.Offering) (*model.Offering, error) {
	existing, err := s.repo.FindByID(ctx, offering.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	offering.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *offeringService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// TransformationService exposes before/after showcase operations.
type TransformationService interface {
	List(ctx context.Context) ([]model.Transformation, error)
	Create(ctx context.Context, transformation *model.Transformation) (*model.Transformation, error)
	Update(ctx context.Context, transformation *model.Transformation) (*model.Transformation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transformationService struct {
	repo repository.TransformationRepository
}

// NewTransformationService builds a TransformationService.
func NewTransformationService(repo repository.TransformationRepository) TransformationService {
	return &transformationService{repo: repo}
}

func (s *transformationService) List(ctx context.Context) ([]model.Transformation, error) {
	return s.repo.List(ctx)
}

func (s *transformationService) Create(ctx context.Context, transformation *model.Transformation) (*model.Transformation, error) {
	if err := s.repo.Create(ctx, transformation); err != nil {
		return nil, err
	}
	return transformation, nil
}

func (s *transformationService) Update(ctx context.Context, transformation *model.Transformation) (*model.Transformation, error) {
	existing, err := s.repo.FindByID(ctx, transformation.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	transformation.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, transformation); err != nil {
		return nil, err
	}
	return transformation, nil
}

func (s *transformationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
