package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/model"
)

// GalleryRepository defines gallery persistence operations.
type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	Update(ctx context.Context, image *model.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error)
	List(ctx context.Context) ([]model.GalleryImage, error)
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) Update(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GalleryImage{}, "id = ?", id).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) List(ctx context.Context) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.WithContext(ctx).Order("sort_order ASC, created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
