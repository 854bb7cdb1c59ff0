package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// SyncLog is an append-only record of one sync attempt. OTAConfigID is a
// weak reference: there is deliberately no foreign-key constraint so log
// rows survive configuration deletion for audit purposes.
type SyncLog struct {
	ID               string     `gorm:"column:id;primaryKey;type:uuid"`
	OTAConfigID      string     `gorm:"column:ota_config_id;type:uuid;index"`
	SyncType         string     `gorm:"column:sync_type;type:varchar(20);not null"`
	Status           string     `gorm:"column:status;type:varchar(10);not null"`
	Message          string     `gorm:"column:message;type:text"`
	RecordsProcessed int        `gorm:"column:records_processed;default:0"`
	SyncStartedAt    time.Time  `gorm:"column:sync_started_at;not null"`
	SyncCompletedAt  *time.Time `gorm:"column:sync_completed_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SyncLog) TableName() string {
	return "sync_logs"
}

func (l *SyncLog) BeforeCreate(tx *gormlib.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
