package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/model"
)

// TransformationRepository defines persistence for before/after showcases.
type TransformationRepository interface {
	Create(ctx context.Context, transformation *model.Transformation) error
	Update(ctx context.Context, transformation *model.Transformation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transformation, error)
	List(ctx context.Context) ([]model.Transformation, error)
}

type transformationRepository struct {
	db *gorm.DB
}

// NewTransformationRepository creates a new transformation repository.
func NewTransformationRepository(db *gorm.DB) TransformationRepository {
	return &transformationRepository{db: db}
}

func (r *transformationRepository) Create(ctx context.Context, transformation *model.Transformation) error {
	return r.db.WithContext(ctx).Create(transformation).Error
}

func (r *transformationRepository) Update(ctx context.Context, transformation *model.Transformation) error {
	return r.db.WithContext(ctx).Save(transformation).Error
}

func (r *transformationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Transformation{}, "id = ?", id).Error
}

func (r *transformationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transformation, error) {
	var transformation model.Transformation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transformation).Error; err != nil {
		return nil, err
	}
	return &transformation, nil
}

func (r *transformationRepository) List(ctx context.Context) ([]model.Transformation, error) {
	var transformations []model.Transformation
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&transformations).Error; err != nil {
		return nil, err
	}
	return transformations, nil
}
