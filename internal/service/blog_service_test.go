package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "decora/internal/errors"
	"decora/internal/model"
)

// MockBlogRepository is a mock implementation of BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(ctx context.Context, post *model.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func TestBlogService_Create_StampsPublication(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.BlogPost")).Return(nil)
	svc := NewBlogService(mockRepo)

	published, err := svc.Create(context.Background(), &model.BlogPost{Title: "Post", Published: true})
	require.NoError(t, err)
	assert.NotNil(t, published.PublishedAt)

	draft, err := svc.Create(context.Background(), &model.BlogPost{Title: "Draft"})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)
}

func TestBlogService_Update_PreservesPublicationDate(t *testing.T) {
	postID := uuid.New()
	originalStamp := time.Now().Add(-48 * time.Hour)

	mockRepo := new(MockBlogRepository)
	mockRepo.On("FindByID", mock.Anything, postID).Return(&model.BlogPost{
		ID:          postID,
		Title:       "Original Title",
		Published:   true,
		PublishedAt: &originalStamp,
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BlogPost")).Return(nil)
	svc := NewBlogService(mockRepo)

	updated, err := svc.Update(context.Background(), &model.BlogPost{
		ID:        postID,
		Title:     "Edited Title",
		Published: true,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, updated.PublishedAt.Equal(originalStamp))
}

func TestBlogService_Update_NotFound(t *testing.T) {
	postID := uuid.New()

	mockRepo := new(MockBlogRepository)
	mockRepo.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
	svc := NewBlogService(mockRepo)

	updated, err := svc.Update(context.Background(), &model.BlogPost{ID: postID})

	assert.Equal(t, apperrors.ErrNotFound, err)
	assert.Nil(t, updated)
}

// Drafts must be invisible through the public detail read, even with the id
// in hand.
func TestBlogService_GetPublished_HidesDrafts(t *testing.T) {
	draftID := uuid.New()
	publishedID := uuid.New()
	now := time.Now()

	mockRepo := new(MockBlogRepository)
	mockRepo.On("FindByID", mock.Anything, draftID).Return(&model.BlogPost{
		ID:    draftID,
		Title: "Draft",
	}, nil)
	mockRepo.On("FindByID", mock.Anything, publishedID).Return(&model.BlogPost{
		ID:          publishedID,
		Title:       "Live",
		Published:   true,
		PublishedAt: &now,
	}, nil)
	svc := NewBlogService(mockRepo)

	post, err := svc.GetPublished(context.Background(), draftID)
	assert.Equal(t, apperrors.ErrNotFound, err)
	assert.Nil(t, post)

	post, err = svc.GetPublished(context.Background(), publishedID)
	require.NoError(t, err)
	assert.Equal(t, "Live", post.Title)
}

func TestBlogService_Get_NotFound(t *testing.T) {
	postID := uuid.New()

	mockRepo := new(MockBlogRepository)
	mockRepo.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
	svc := NewBlogService(mockRepo)

	post, err := svc.Get(context.Background(), postID)

	assert.Equal(t, apperrors.ErrNotFound, err)
	assert.Nil(t, post)
}
