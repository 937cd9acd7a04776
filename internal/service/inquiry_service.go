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

// InquiryService captures contact-form submissions and lets admins work
// through them.
type InquiryService interface {
	Submit(ctx context.Context, inquiry *model.Inquiry) (*model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
	MarkHandled(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryService struct {
	repo repository.InquiryRepository
}

// NewInquiryService builds an InquiryService.
func NewInquiryService(repo repository.InquiryRepository) InquiryService {
	return &inquiryService{repo: repo}
}

func (s *inquiryService) Submit(ctx context.Context, inquiry *model.Inquiry) (*model.Inquiry, error) {
	inquiry.Email = normalizeEmail(inquiry.Email)
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *inquiryService) MarkHandled(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkHandled(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *inquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
