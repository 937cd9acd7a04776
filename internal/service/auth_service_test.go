package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"decora/internal/auth"
	apperrors "decora/internal/errors"
	"decora/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiry time.Time) error {
	args := m.Called(ctx, userID, token, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*model.User, error) {
	args := m.Called(ctx, token, newPasswordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockEmailSender is a mock implementation of EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPasswordReset(to, resetURL string) error {
	args := m.Called(to, resetURL)
	return args.Error(0)
}

func newTestAuthService(users *MockUserRepository, email *MockEmailSender) AuthService {
	jwtService, _ := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(users, jwtService, email, "https://example.com/reset-password", 30*time.Minute)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			userName: "Test User",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email normalized before lookup",
			userName: "Shouting User",
			email:    "  Test@EXAMPLE.com ",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{Email: "test@example.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
		{
			name:     "duplicate surfaces from unique index on insert race",
			userName: "Racing User",
			email:    "race@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, new(MockEmailSender))
			token, user, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, "test@example.com", user.Email)
				assert.Equal(t, auth.RoleUser, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Role:         auth.RoleUser,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Role:         auth.RoleUser,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, new(MockEmailSender))
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@example.com").Return(&model.User{
		ID:           uuid.New(),
		Email:        "known@example.com",
		PasswordHash: string(hashedPassword),
		Role:         auth.RoleUser,
	}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "unknown@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := newTestAuthService(mockRepo, new(MockEmailSender))

	_, _, errUnknown := service.Login(context.Background(), "unknown@example.com", "whatever")
	_, _, errWrongPass := service.Login(context.Background(), "known@example.com", "wrong")

	assert.Equal(t, errUnknown, errWrongPass)
	assert.Equal(t, apperrors.ErrInvalidCredentials, errUnknown)
}

// A store outage during login is an infrastructure failure, not a credentials
// problem: it must not masquerade as the uniform 401.
func TestAuthService_Login_StoreFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, errors.New("dial tcp: connection refused"))

	service := newTestAuthService(mockRepo, new(MockEmailSender))
	token, user, err := service.Login(context.Background(), "test@example.com", "password123")

	assert.Error(t, err)
	assert.NotEqual(t, apperrors.ErrInvalidCredentials, err)
	assert.Empty(t, token)
	assert.Nil(t, user)

	httpErr := apperrors.MapErrorToHTTP(err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("known email stores token and sends mail", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockEmail := new(MockEmailSender)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
			ID:    userID,
			Email: "test@example.com",
		}, nil)
		mockRepo.On("SetResetToken", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
		mockEmail.On("SendPasswordReset", "test@example.com", mock.MatchedBy(func(url string) bool {
			return len(url) > len("https://example.com/reset-password/")
		})).Return(nil)

		service := newTestAuthService(mockRepo, mockEmail)
		err := service.ForgotPassword(context.Background(), "test@example.com")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockEmail.AssertExpectations(t)
	})

	t.Run("unknown email is acknowledged without side effects", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockEmail := new(MockEmailSender)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		service := newTestAuthService(mockRepo, mockEmail)
		err := service.ForgotPassword(context.Background(), "nobody@example.com")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "SetResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockEmail.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything)
	})

	t.Run("mail failure does not change the outcome", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockEmail := new(MockEmailSender)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
			ID:    userID,
			Email: "test@example.com",
		}, nil)
		mockRepo.On("SetResetToken", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
		mockEmail.On("SendPasswordReset", "test@example.com", mock.Anything).Return(assert.AnError)

		service := newTestAuthService(mockRepo, mockEmail)
		err := service.ForgotPassword(context.Background(), "test@example.com")

		assert.NoError(t, err)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token yields a fresh session", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("ConsumeResetToken", mock.Anything, "good-token", mock.AnythingOfType("string")).Return(&model.User{
			ID:    userID,
			Email: "test@example.com",
			Role:  auth.RoleUser,
		}, nil)

		service := newTestAuthService(mockRepo, new(MockEmailSender))
		token, user, err := service.ResetPassword(context.Background(), "good-token", "new-password-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, userID, user.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("spent or expired token is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("ConsumeResetToken", mock.Anything, "spent-token", mock.AnythingOfType("string")).Return(nil, gorm.ErrRecordNotFound)

		service := newTestAuthService(mockRepo, new(MockEmailSender))
		token, user, err := service.ResetPassword(context.Background(), "spent-token", "new-password-1")

		assert.Equal(t, apperrors.ErrInvalidResetToken, err)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})
}

// casUserStore is an in-memory UserRepository whose ConsumeResetToken is a
// real compare-and-swap, for exercising concurrent reset attempts.
type casUserStore struct {
	mu    sync.Mutex
	user  model.User
	token *string
}

func (s *casUserStore) Create(ctx context.Context, user *model.User) error { return nil }
func (s *casUserStore) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return &s.user, nil
}
func (s *casUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return &s.user, nil
}
func (s *casUserStore) Update(ctx context.Context, user *model.User) error { return nil }
func (s *casUserStore) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &token
	return nil
}
func (s *casUserStore) ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil || *s.token != token {
		return nil, gorm.ErrRecordNotFound
	}
	s.token = nil
	s.user.PasswordHash = newPasswordHash
	u := s.user
	return &u, nil
}

func TestAuthService_ResetPassword_SingleUse(t *testing.T) {
	store := &casUserStore{user: model.User{ID: uuid.New(), Email: "test@example.com", Role: auth.RoleUser}}
	resetToken := "one-shot-token"
	store.token = &resetToken

	jwtService, _ := auth.NewJWTService("test-secret", time.Hour)
	service := NewAuthService(store, jwtService, new(MockEmailSender), "https://example.com/reset-password", 30*time.Minute)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = service.ResetPassword(context.Background(), resetToken, "new-password-1")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperrors.ErrInvalidResetToken, err)
		}
	}
	assert.Equal(t, 1, succeeded)
}
