package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"
	gormModels "github.com/Abishekkhanal/channelManager2/internal/models/gorm"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) *gormlib.DB {
	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&gormModels.OTAConfig{}, &gormModels.SyncLog{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

func seedConfig(t *testing.T, db *gormlib.DB, otaName string) *gormModels.OTAConfig {
	config := &gormModels.OTAConfig{
		OTAName:     otaName,
		EndpointURL: "https://" + otaName + ".example.com",
		IsActive:    true,
	}
	if err := db.Create(config).Error; err != nil {
		t.Fatalf("Failed to seed config: %v", err)
	}
	return config
}

func appendEntry(t *testing.T, repo *SyncLogRepo, configID, status string, startedAt time.Time) {
	completed := startedAt.Add(time.Second)
	err := repo.Append(context.Background(), &gormModels.SyncLog{
		OTAConfigID:      configID,
		SyncType:         constants.SyncTypeAvailability,
		Status:           status,
		Message:          "ok",
		RecordsProcessed: 3,
		SyncStartedAt:    startedAt,
		SyncCompletedAt:  &completed,
	})
	if err != nil {
		t.Fatalf("Failed to append log: %v", err)
	}
}

func TestSyncLogRepo_Append_TruncatesMessage(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewSyncLogRepo(db)
	config := seedConfig(t, db, "agoda")

	entry := &gormModels.SyncLog{
		OTAConfigID:   config.ID,
		SyncType:      constants.SyncTypeAvailability,
		Status:        constants.SyncStatusFailed,
		Message:       strings.Repeat("x", constants.MaxSyncLogMessage+500),
		SyncStartedAt: time.Now(),
	}
	if err := repo.Append(context.Background(), entry); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	var stored gormModels.SyncLog
	if err := db.First(&stored, "id = ?", entry.ID).Error; err != nil {
		t.Fatalf("Failed to reload entry: %v", err)
	}
	if len(stored.Message) != constants.MaxSyncLogMessage {
		t.Errorf("Expected message truncated to %d, got %d", constants.MaxSyncLogMessage, len(stored.Message))
	}
}

func TestSyncLogRepo_List_Pagination(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewSyncLogRepo(db)
	config := seedConfig(t, db, "agoda")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		appendEntry(t, repo, config.ID, constants.SyncStatusSuccess, base.Add(time.Duration(i)*time.Minute))
	}

	page, err := repo.List(context.Background(), dtos.SyncLogQuery{Limit: 2, Page: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.TotalCount != 5 {
		t.Errorf("Expected total 5, got %d", page.TotalCount)
	}
	if len(page.Logs) != 2 {
		t.Fatalf("Expected 2 entries on page 1, got %d", len(page.Logs))
	}
	// newest first
	if !page.Logs[0].SyncStartedAt.After(page.Logs[1].SyncStartedAt) {
		t.Error("Expected entries ordered newest first")
	}

	last, err := repo.List(context.Background(), dtos.SyncLogQuery{Limit: 2, Page: 3})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(last.Logs) != 1 {
		t.Errorf("Expected 1 entry on page 3, got %d", len(last.Logs))
	}
}

func TestSyncLogRepo_List_FilterByConfig(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewSyncLogRepo(db)

	agoda := seedConfig(t, db, "agoda")
	airbnb := seedConfig(t, db, "airbnb")

	appendEntry(t, repo, agoda.ID, constants.SyncStatusSuccess, time.Now().Add(-2*time.Minute))
	appendEntry(t, repo, agoda.ID, constants.SyncStatusFailed, time.Now().Add(-time.Minute))
	appendEntry(t, repo, airbnb.ID, constants.SyncStatusSuccess, time.Now())

	page, err := repo.List(context.Background(), dtos.SyncLogQuery{OTAConfigID: agoda.ID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("Expected 2 entries for agoda, got %d", page.TotalCount)
	}
	for _, entry := range page.Logs {
		if entry.OTAName != "agoda" {
			t.Errorf("Expected joined partner agoda, got %s", entry.OTAName)
		}
	}
}

func TestSyncLogRepo_List_DeletedConfigReportsUnknown(t *testing.T) {
	db := setupRepoDB(t)
	logRepo := NewSyncLogRepo(db)
	configRepo := NewOTAConfigRepo(db)

	config := seedConfig(t, db, "agoda")
	appendEntry(t, logRepo, config.ID, constants.SyncStatusSuccess, time.Now())

	if err := configRepo.Delete(context.Background(), config.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// logs survive the configuration
	page, err := logRepo.List(context.Background(), dtos.SyncLogQuery{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Logs) != 1 {
		t.Fatalf("Expected orphaned log entry to survive, got %d entries", len(page.Logs))
	}
	if page.Logs[0].OTAName != "unknown" {
		t.Errorf("Expected partner 'unknown' after config deletion, got %s", page.Logs[0].OTAName)
	}
}

func TestSyncLogRepo_Stats(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewSyncLogRepo(db)

	agoda := seedConfig(t, db, "agoda")
	booking := seedConfig(t, db, "booking_com")

	now := time.Now()
	appendEntry(t, repo, agoda.ID, constants.SyncStatusSuccess, now.Add(-30*time.Minute))
	appendEntry(t, repo, agoda.ID, constants.SyncStatusSuccess, now.Add(-20*time.Minute))
	appendEntry(t, repo, agoda.ID, constants.SyncStatusFailed, now.Add(-10*time.Minute))
	appendEntry(t, repo, booking.ID, constants.SyncStatusSuccess, now.Add(-5*time.Minute))
	// outside the window, must not count
	appendEntry(t, repo, agoda.ID, constants.SyncStatusFailed, now.Add(-48*time.Hour))

	stats, err := repo.Stats(context.Background(), now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 partners, got %d", len(stats))
	}

	// ordered by partner name
	if stats[0].OTAName != "agoda" || stats[1].OTAName != "booking_com" {
		t.Fatalf("Unexpected partner order: %s, %s", stats[0].OTAName, stats[1].OTAName)
	}

	agodaStats := stats[0]
	if agodaStats.Total != 3 || agodaStats.Succeeded != 2 || agodaStats.Failed != 1 {
		t.Errorf("Unexpected agoda stats: %+v", agodaStats)
	}
	if agodaStats.LastSyncAt == nil {
		t.Fatal("Expected last_sync_at in stats")
	}
	if diff := agodaStats.LastSyncAt.Sub(now.Add(-10 * time.Minute)); diff < -time.Second || diff > time.Second {
		t.Errorf("Expected last_sync_at near the newest in-window entry, got %v", agodaStats.LastSyncAt)
	}
}

func TestSyncLogRepo_CountForConfig(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewSyncLogRepo(db)
	config := seedConfig(t, db, "agoda")

	appendEntry(t, repo, config.ID, constants.SyncStatusSuccess, time.Now())
	appendEntry(t, repo, config.ID, constants.SyncStatusFailed, time.Now())

	count, err := repo.CountForConfig(context.Background(), config.ID)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 entries, got %d", count)
	}
}
