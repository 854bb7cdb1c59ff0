package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// ErrNotFound is returned by mutations that matched no row. Reads report
// absence as (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

type OTAConfigRepo struct {
	db *gormlib.DB
}

func NewOTAConfigRepo(db *gormlib.DB) *OTAConfigRepo {
	return &OTAConfigRepo{db: db}
}

// GetByID fetches a configuration by its ID. Returns (nil, nil) when absent.
func (r *OTAConfigRepo) GetByID(ctx context.Context, id string) (*gorm.OTAConfig, error) {
	var config gorm.OTAConfig

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&config).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get config by ID: %w", err)
	}

	return &config, nil
}

// GetByName fetches a configuration by its unique ota_name
func (r *OTAConfigRepo) GetByName(ctx context.Context, otaName string) (*gorm.OTAConfig, error) {
	var config gorm.OTAConfig

	err := r.db.WithContext(ctx).
		Where("ota_name = ?", otaName).
		First(&config).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get config by name: %w", err)
	}

	return &config, nil
}

// ListAll returns every configuration, newest first
func (r *OTAConfigRepo) ListAll(ctx context.Context) ([]gorm.OTAConfig, error) {
	var configs []gorm.OTAConfig

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&configs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}

	return configs, nil
}

// ListActive returns configurations eligible for sync
func (r *OTAConfigRepo) ListActive(ctx context.Context) ([]gorm.OTAConfig, error) {
	var configs []gorm.OTAConfig

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("ota_name ASC").
		Find(&configs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list active configs: %w", err)
	}

	return configs, nil
}

// Create inserts a new configuration
func (r *OTAConfigRepo) Create(ctx context.Context, config *gorm.OTAConfig) error {
	err := r.db.WithContext(ctx).Create(config).Error
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	return nil
}

// Update saves an existing configuration
func (r *OTAConfigRepo) Update(ctx context.Context, config *gorm.OTAConfig) error {
	err := r.db.WithContext(ctx).Save(config).Error
	if err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	return nil
}

// Delete removes a configuration. Sync logs keep their weak reference and
// are deliberately not cascaded, so the audit trail survives.
func (r *OTAConfigRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gorm.OTAConfig{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete config: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateLastSync stamps last_sync_at. Called on every attempt, success or
// failure: the act of attempting counts as "synced" for scheduling.
func (r *OTAConfigRepo) UpdateLastSync(ctx context.Context, id string, syncedAt time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&gorm.OTAConfig{}).
		Where("id = ?", id).
		Update("last_sync_at", syncedAt).Error

	if err != nil {
		return fmt.Errorf("failed to update last_sync_at: %w", err)
	}
	return nil
}
