package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/cache"
	apperrors "decora/internal/errors"
	"decora/internal/model"
	"decora/internal/repository"
)

const (
	publishedProjectsCacheKey = "projects:published"
	contentCacheTTL           = 5 * time.Minute
)

// ProjectService exposes portfolio operations. The published list is the
// hottest public read and goes through the cache.
type ProjectService interface {
	ListPublished(ctx context.Context) ([]model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService builds a ProjectService with repository and cache.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, cache: cache}
}

func (s *projectService) ListPublished(ctx context.Context) ([]model.Project, error) {
	var cached []model.Project
	if s.cache.GetJSON(ctx, publishedProjectsCacheKey, &cached) {
		return cached, nil
	}

	projects, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, publishedProjectsCacheKey, projects, contentCacheTTL)
	return projects, nil
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

// GetPublished is the public detail read: drafts are indistinguishable from
// records that do not exist.
func (s *projectService) GetPublished(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.Published {
		return nil, apperrors.ErrNotFound
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, publishedProjectsCacheKey)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	existing, err := s.repo.FindByID(ctx, project.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	project.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, publishedProjectsCacheKey)
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, publishedProjectsCacheKey)
	return nil
}
