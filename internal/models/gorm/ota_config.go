package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// OTAConfig holds the per-partner channel configuration: credentials,
// endpoint and the partner-side property identifier. Credentials are stored
// as entered and must never be returned to clients in plaintext after
// creation; response DTOs mask them.
type OTAConfig struct {
	ID            string     `gorm:"column:id;primaryKey;type:uuid"`
	OTAName       string     `gorm:"column:ota_name;type:varchar(50);not null;uniqueIndex"`
	APIKey        string     `gorm:"column:api_key;type:varchar(255)"`
	APIUsername   string     `gorm:"column:api_username;type:varchar(255)"`
	APIPassword   string     `gorm:"column:api_password;type:varchar(255)"`
	EndpointURL   string     `gorm:"column:endpoint_url;type:varchar(512);not null"`
	HotelID       string     `gorm:"column:hotel_id;type:varchar(100)"`
	IsActive      bool       `gorm:"column:is_active;default:true"`
	LastSyncAt    *time.Time `gorm:"column:last_sync_at"`
	SyncFrequency int        `gorm:"column:sync_frequency;default:60"` // minutes, informational
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (OTAConfig) TableName() string {
	return "ota_configurations"
}

// BeforeCreate assigns a UUID so the same model works on Postgres and the
// sqlite test databases.
func (c *OTAConfig) BeforeCreate(tx *gormlib.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
