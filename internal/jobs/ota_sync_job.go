package jobs

import (
	"context"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"
	"github.com/Abishekkhanal/channelManager2/internal/logging"
	"github.com/Abishekkhanal/channelManager2/internal/services"
)

// OTASyncJob triggers scheduled syncs for configurations whose
// sync_frequency window has elapsed. Manual triggering through the API
// remains the primary path; this job is the in-process scheduler.
type OTASyncJob struct {
	configRepo  *repositories.OTAConfigRepo
	syncService *services.SyncService
	now         func() time.Time
}

// NewOTASyncJob creates a new scheduled sync job instance
func NewOTASyncJob(configRepo *repositories.OTAConfigRepo, syncService *services.SyncService) *OTASyncJob {
	return &OTASyncJob{
		configRepo:  configRepo,
		syncService: syncService,
		now:         time.Now,
	}
}

// RunScheduled ticks at the given interval until the context is cancelled
func (j *OTASyncJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logging.Info("OTA sync scheduler started", "check_interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			logging.Info("OTA sync scheduler stopped")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("Scheduled sync pass failed", "error", err.Error())
			}
		}
	}
}

// Run performs one scheduler pass: every active configuration that is due
// gets a SyncOne. A failing partner does not stop the pass.
func (j *OTASyncJob) Run(ctx context.Context) error {
	configs, err := j.configRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	now := j.now()
	for _, config := range configs {
		if !j.isDue(config.LastSyncAt, config.SyncFrequency, now) {
			continue
		}

		result, err := j.syncService.SyncOne(ctx, config.ID)
		if err != nil {
			logging.Error("Scheduled sync failed before dispatch",
				"config_id", config.ID,
				"partner", config.OTAName,
				"error", err.Error(),
			)
			continue
		}

		logging.Info("Scheduled sync completed",
			"config_id", config.ID,
			"partner", config.OTAName,
			"success", result.Success,
			"records", result.RecordsProcessed,
		)
	}

	return nil
}

// isDue reports whether a configuration's sync_frequency window has elapsed.
// A configuration that has never synced is always due.
func (j *OTASyncJob) isDue(lastSyncAt *time.Time, frequencyMinutes int, now time.Time) bool {
	if lastSyncAt == nil {
		return true
	}
	if frequencyMinutes <= 0 {
		frequencyMinutes = 60
	}
	return now.Sub(*lastSyncAt) >= time.Duration(frequencyMinutes)*time.Minute
}
