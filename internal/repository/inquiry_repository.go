package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/model"
)

// InquiryRepository defines persistence for contact-form submissions.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	List(ctx context.Context) ([]model.Inquiry, error)
	MarkHandled(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository.
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepository) MarkHandled(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Inquiry{}).
		Where("id = ?", id).
		Update("handled", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Inquiry{}, "id = ?", id).Error
}
