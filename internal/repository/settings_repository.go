package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"decora/internal/model"
)

// SettingsRepository defines persistence for the singleton site settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Save(ctx context.Context, settings *model.SiteSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row, creating an empty one on first read so the
// admin panel always has something to edit.
func (r *settingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	var settings model.SiteSettings
	err := r.db.WithContext(ctx).Where("id = ?", model.SettingsRowID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.SiteSettings{ID: model.SettingsRowID}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *model.SiteSettings) error {
	settings.ID = model.SettingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
