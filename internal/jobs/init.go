package jobs

import (
	"context"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"
	"github.com/Abishekkhanal/channelManager2/internal/services"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	configRepo *repositories.OTAConfigRepo,
	syncService *services.SyncService,
) *OTASyncJob {
	// Scheduled OTA sync: checks every minute which configurations are due
	// per their sync_frequency
	syncJob := NewOTASyncJob(configRepo, syncService)

	go syncJob.RunScheduled(ctx, 1*time.Minute)

	return syncJob
}
