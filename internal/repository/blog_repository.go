package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/model"
)

// BlogRepository defines blog persistence operations.
type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	List(ctx context.Context) ([]model.BlogPost, error)
	ListPublished(ctx context.Context) ([]model.BlogPost, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) Update(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BlogPost{}, "id = ?", id).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	if err := r.db.WithContext(ctx).Where("published = ?", true).
		Order("published_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
