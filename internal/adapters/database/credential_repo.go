package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

const openWeatherMapCredential = "openweathermap_api_key"

// CredentialModel stores a named secret
type CredentialModel struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (CredentialModel) TableName() string {
	return "credentials"
}

// CredentialRepositoryAdapter implements the CredentialStore port using GORM
type CredentialRepositoryAdapter struct {
	db *gorm.DB
}

// NewCredentialRepositoryAdapter creates a new credential repository adapter
func NewCredentialRepositoryAdapter(db *gorm.DB) *CredentialRepositoryAdapter {
	return &CredentialRepositoryAdapter{db: db}
}

// GetAPIKey returns the stored OpenWeatherMap key
func (r *CredentialRepositoryAdapter) GetAPIKey(ctx context.Context) (string, error) {
	var model CredentialModel
	err := r.db.WithContext(ctx).Where("name = ?", openWeatherMapCredential).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.NewNotFoundError("no API key stored")
		}
		return "", errors.NewDatabaseError("failed to read API key", err)
	}
	return model.Value, nil
}

// SaveAPIKey stores or replaces the OpenWeatherMap key
func (r *CredentialRepositoryAdapter) SaveAPIKey(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("API key cannot be empty")
	}

	model := CredentialModel{Name: openWeatherMapCredential, Value: key}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return errors.NewDatabaseError("failed to save API key", err)
	}
	return nil
}

var _ ports.CredentialStore = (*CredentialRepositoryAdapter)(nil)
