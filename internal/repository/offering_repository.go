package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/model"
)

// OfferingRepository defines persistence for the studio's service offerings.
type OfferingRepository interface {
	Create(ctx context.Context, offering *model.Offering) error
	Update(ctx context.Context, offering *model.Offering) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Offering, error)
	List(ctx context.Context) ([]model.Offering, error)
}

type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository creates a new offering repository.
func NewOfferingRepository(db *gorm.DB) OfferingRepository {
	return &offeringRepository{db: db}
}

func (r *offeringRepository) Create(ctx context.Context, offering *model.Offering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *offeringRepository) Update(ctx context.Context, offering *model.Offering) error {
	return r.db.WithContext(ctx).Save(offering).Error
}

func (r *offeringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Offering{}, "id = ?", id).Error
}

func (r *offeringRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Offering, error) {
	var offering model.Offering
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&offering).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

func (r *offeringRepository) List(ctx context.Context) ([]model.Offering, error) {
	var offerings []model.Offering
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}
