package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "decora/internal/errors"
	"decora/internal/model"
	"decora/internal/repository"
)

// BlogService exposes blog operations. Publishing stamps the publication time
// once; unpublishing keeps it so re-publishing preserves the original date.
type BlogService interface {
	ListPublished(ctx context.Context) ([]model.BlogPost, error)
	List(ctx context.Context) ([]model.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error)
	Update(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogService struct {
	repo repository.BlogRepository
}

// NewBlogService builds a BlogService.
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	return s.repo.ListPublished(ctx)
}

func (s *blogService) List(ctx context.Context) ([]model.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *blogService) Get(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetPublished is the public detail read: drafts are indistinguishable from
// posts that do not exist.
func (s *blogService) GetPublished(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}

func (s *blogService) Create(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error) {
	stampPublication(post)
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Update(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error) {
	existing, err := s.repo.FindByID(ctx, post.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	// Carry the original stamp forward so editing or re-publishing a post
	// keeps its first publication date.
	post.PublishedAt = existing.PublishedAt
	post.CreatedAt = existing.CreatedAt
	stampPublication(post)
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func stampPublication(post *model.BlogPost) {
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
}
