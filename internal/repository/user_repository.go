package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decora/internal/model"
)

// UserRepository defines the credential-store persistence contract.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	// SetResetToken overwrites any prior unconsumed token for the user, so at
	// most one reset token is ever live per user.
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiry time.Time) error
	// ConsumeResetToken performs the check-and-clear as one conditional update:
	// the password hash is replaced and both token fields cleared only where
	// the token still matches and has not expired. Under concurrent use of the
	// same token exactly one caller succeeds; the rest see ErrRecordNotFound.
	ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiry time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		}).Error
}

func (r *userRepository) ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("reset_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).
		Updates(map[string]interface{}{
			"password_hash":      newPasswordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != 1 {
		// Expired, or another request consumed the token first.
		return nil, gorm.ErrRecordNotFound
	}

	user.PasswordHash = newPasswordHash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	return &user, nil
}
