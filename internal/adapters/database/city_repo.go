package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// CityModel is one tracked city; Position keeps the user's order
type CityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	NameKey   string `gorm:"uniqueIndex;not null"`
	Position  int    `gorm:"not null;index"`
	CreatedAt time.Time
}

func (CityModel) TableName() string {
	return "cities"
}

// CityRepositoryAdapter implements the CityStore port using GORM
type CityRepositoryAdapter struct {
	db *gorm.DB
}

// NewCityRepositoryAdapter creates a new city repository adapter
func NewCityRepositoryAdapter(db *gorm.DB) *CityRepositoryAdapter {
	return &CityRepositoryAdapter{db: db}
}

// Load returns the stored cities in their saved order
func (r *CityRepositoryAdapter) Load(ctx context.Context) ([]string, error) {
	var models []CityModel
	if err := r.db.WithContext(ctx).Order("position asc").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to load cities", err)
	}

	cities := make([]string, 0, len(models))
	for _, model := range models {
		cities = append(cities, model.Name)
	}
	return cities, nil
}

// Save replaces the stored list with cities, in order
func (r *CityRepositoryAdapter) Save(ctx context.Context, cities []string) error {
	models := make([]CityModel, 0, len(cities))
	for i, name := range cities {
		models = append(models, CityModel{
			Name:     name,
			NameKey:  strings.ToLower(strings.TrimSpace(name)),
			Position: i,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&CityModel{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
	if err != nil {
		return errors.NewDatabaseError("failed to save cities", err)
	}
	return nil
}

var _ ports.CityStore = (*CityRepositoryAdapter)(nil)
