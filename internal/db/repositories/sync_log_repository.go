package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"
	"github.com/Abishekkhanal/channelManager2/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// SyncLogRepo handles the append-only sync log
type SyncLogRepo struct {
	db *gormlib.DB
}

func NewSyncLogRepo(db *gormlib.DB) *SyncLogRepo {
	return &SyncLogRepo{db: db}
}

// Append writes one log entry. A single Create is atomic per entry; the
// message is truncated first so oversized partner responses cannot fail the
// insert.
func (r *SyncLogRepo) Append(ctx context.Context, entry *gorm.SyncLog) error {
	if len(entry.Message) > constants.MaxSyncLogMessage {
		entry.Message = entry.Message[:constants.MaxSyncLogMessage]
	}

	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to append sync log: %w", err)
	}
	return nil
}

// List returns a page of log entries, newest first, joined with the partner
// name. The join is a LEFT JOIN on purpose: entries for deleted
// configurations are kept and report their partner as "unknown".
func (r *SyncLogRepo) List(ctx context.Context, query dtos.SyncLogQuery) (*dtos.SyncLogPage, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}

	base := r.db.WithContext(ctx).
		Table("sync_logs AS l").
		Joins("LEFT JOIN ota_configurations AS c ON c.id = l.ota_config_id")

	if query.OTAConfigID != "" {
		base = base.Where("l.ota_config_id = ?", query.OTAConfigID)
	}

	var total int64
	if err := base.Session(&gormlib.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count sync logs: %w", err)
	}

	var logs []dtos.SyncLogResponse
	err := base.
		Select("l.id, l.ota_config_id, COALESCE(c.ota_name, 'unknown') AS ota_name, l.sync_type, l.status, l.message, l.records_processed, l.sync_started_at, l.sync_completed_at").
		Order("l.sync_started_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&logs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}

	return &dtos.SyncLogPage{
		Logs:       logs,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}, nil
}

// statsRow is the raw aggregate row. last_sync_at comes back as text
// because MAX() strips the column's declared type on sqlite; it is parsed
// after the scan.
type statsRow struct {
	OTAConfigID string
	OTAName     string
	Total       int
	Succeeded   int
	Failed      int
	LastSyncAt  string
}

var statsTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
}

// Stats aggregates log outcomes per partner since the given time
func (r *SyncLogRepo) Stats(ctx context.Context, since time.Time) ([]dtos.PartnerSyncStats, error) {
	var rows []statsRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT l.ota_config_id,
		       COALESCE(c.ota_name, 'unknown') AS ota_name,
		       COUNT(*) AS total,
		       SUM(CASE WHEN l.status = ? THEN 1 ELSE 0 END) AS succeeded,
		       SUM(CASE WHEN l.status = ? THEN 1 ELSE 0 END) AS failed,
		       MAX(l.sync_started_at) AS last_sync_at
		FROM sync_logs l
		LEFT JOIN ota_configurations c ON c.id = l.ota_config_id
		WHERE l.sync_started_at >= ?
		GROUP BY l.ota_config_id, c.ota_name
		ORDER BY ota_name ASC`,
		constants.SyncStatusSuccess, constants.SyncStatusFailed, since,
	).Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sync stats: %w", err)
	}

	stats := make([]dtos.PartnerSyncStats, len(rows))
	for i, row := range rows {
		stats[i] = dtos.PartnerSyncStats{
			OTAConfigID: row.OTAConfigID,
			OTAName:     row.OTAName,
			Total:       row.Total,
			Succeeded:   row.Succeeded,
			Failed:      row.Failed,
		}
		for _, layout := range statsTimeLayouts {
			if ts, err := time.Parse(layout, row.LastSyncAt); err == nil {
				stats[i].LastSyncAt = &ts
				break
			}
		}
	}

	return stats, nil
}

// CountForConfig returns how many log entries reference a configuration.
// Used by tests and the health surface, not by request handlers.
func (r *SyncLogRepo) CountForConfig(ctx context.Context, configID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gorm.SyncLog{}).
		Where("ota_config_id = ?", configID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count sync logs: %w", err)
	}
	return count, nil
}
