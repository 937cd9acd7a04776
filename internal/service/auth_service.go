package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"decora/internal/auth"
	apperrors "decora/internal/errors"
	"decora/internal/model"
	"decora/internal/repository"
)

const bcryptCost = 10

// EmailSender dispatches outbound mail. Failures are logged, never surfaced:
// the caller-facing acknowledgment must not change based on delivery.
type EmailSender interface {
	SendPasswordReset(to, resetURL string) error
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name         *string
	Phone        *string
	ProfileImage *string
	Password     *string
}

// AuthService handles registration, login, and the password-reset lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) (token string, user *model.User, err error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*model.User, error)
}

type authService struct {
	users         repository.UserRepository
	jwt           *auth.JWTService
	email         EmailSender
	resetURLBase  string
	resetTokenTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService, email EmailSender, resetURLBase string, resetTokenTTL time.Duration) AuthService {
	return &authService{
		users:         users,
		jwt:           jwt,
		email:         email,
		resetURLBase:  resetURLBase,
		resetTokenTTL: resetTokenTTL,
	}
}

// normalizeEmail lower-cases so lookups and the unique index are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with the default role and returns a fresh session.
// Role elevation has no endpoint: admins are created out-of-band by the seed
// command.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, *model.User, error) {
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         auth.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, apperrors.ErrDuplicateEmail
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// Login authenticates a user. Unknown email and wrong password produce the
// same error so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// ForgotPassword stores a single-use reset token and emails a reset link.
// It returns nil for unknown emails so the acknowledgment the handler sends
// is identical either way; only infrastructure failures propagate.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	expiry := time.Now().Add(s.resetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/%s", s.resetURLBase, token)
	if err := s.email.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Printf("password reset email to %s failed: %v", user.Email, err)
	}
	return nil
}

// ResetPassword consumes the token and, on success, returns a fresh session.
// The consume is a single compare-and-swap in the store, so a token used
// twice concurrently updates the password exactly once.
func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, *model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.ConsumeResetToken(ctx, resetToken, string(hashed))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidResetToken
		}
		return "", nil, fmt.Errorf("consume reset token: %w", err)
	}

	token, err := s.jwt.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = update.Phone
	}
	if update.ProfileImage != nil {
		user.ProfileImage = update.ProfileImage
	}
	if update.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
