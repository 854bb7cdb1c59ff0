package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/common"
	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"
	"github.com/Abishekkhanal/channelManager2/internal/logging"
	"github.com/Abishekkhanal/channelManager2/internal/metrics"
	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
	gormModels "github.com/Abishekkhanal/channelManager2/internal/models/gorm"
	"github.com/Abishekkhanal/channelManager2/internal/providers"

	"golang.org/x/sync/errgroup"
)

const (
	statsCacheTTL  = time.Minute
	exportCacheTTL = time.Minute
)

// SyncService orchestrates OTA dispatch: it resolves configurations, builds
// the snapshot, invokes the matching adapter, persists the log entry and
// advances last_sync_at.
type SyncService struct {
	configRepo   *repositories.OTAConfigRepo
	logRepo      *repositories.SyncLogRepo
	availability *AvailabilityService
	registry     *providers.Registry
	cache        common.CacheInterface
	metrics      *metrics.MetricsRegistry
}

func NewSyncService(
	configRepo *repositories.OTAConfigRepo,
	logRepo *repositories.SyncLogRepo,
	availability *AvailabilityService,
	registry *providers.Registry,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *SyncService {
	return &SyncService{
		configRepo:   configRepo,
		logRepo:      logRepo,
		availability: availability,
		registry:     registry,
		cache:        cache,
		metrics:      metricsReg,
	}
}

// SyncOne syncs a single active configuration. Absent or inactive
// configurations fail before any network call.
func (s *SyncService) SyncOne(ctx context.Context, configID string) (*dtos.SyncResponse, error) {
	config, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrConfigNotFound
	}
	if !config.IsActive {
		return nil, ErrConfigInactive
	}

	rooms, err := s.availability.BuildSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability snapshot: %w", err)
	}

	outcome, completedAt := s.dispatch(ctx, config, rooms)

	return &dtos.SyncResponse{
		Success:          outcome.Success,
		Message:          outcome.Message,
		OTAName:          config.OTAName,
		RecordsProcessed: len(rooms),
		SyncedAt:         completedAt,
	}, nil
}

// SyncAll fans out one sync per active configuration concurrently. All legs
// share the same precomputed snapshot so every partner sees a consistent
// view, and a failing partner never aborts its siblings: each leg records
// its own outcome and the aggregate always returns.
func (s *SyncService) SyncAll(ctx context.Context) (*dtos.AggregateSyncResponse, error) {
	configs, err := s.configRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, ErrNoActiveConfigs
	}

	rooms, err := s.availability.BuildSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability snapshot: %w", err)
	}

	results := make([]dtos.PartnerSyncResult, len(configs))

	var g errgroup.Group
	for i := range configs {
		i := i
		config := configs[i]
		g.Go(func() error {
			outcome, _ := s.dispatch(ctx, &config, rooms)
			results[i] = dtos.PartnerSyncResult{
				OTAConfigID: config.ID,
				OTAName:     config.OTAName,
				Success:     outcome.Success,
				Message:     outcome.Message,
			}
			// failures stay local to their slot
			return nil
		})
	}
	_ = g.Wait()

	agg := &dtos.AggregateSyncResponse{
		Total:    len(configs),
		Results:  results,
		SyncedAt: time.Now(),
	}
	for _, res := range results {
		if res.Success {
			agg.Succeeded++
		} else {
			agg.Failed++
		}
	}

	return agg, nil
}

// dispatch runs one sync leg against one configuration: adapter call, log
// entry, last_sync_at. Returns the outcome and the completion time.
func (s *SyncService) dispatch(ctx context.Context, config *gormModels.OTAConfig, rooms []entities.RoomAvailability) (providers.SyncOutcome, time.Time) {
	startedAt := time.Now()

	var outcome providers.SyncOutcome
	provider, ok := s.registry.Lookup(config.OTAName)
	if !ok {
		// no network call for unknown partners
		outcome = providers.SyncOutcome{
			Success: false,
			Message: fmt.Sprintf("Unsupported OTA: %s", config.OTAName),
		}
	} else {
		outcome = provider.Sync(ctx, config, rooms)
	}

	completedAt := time.Now()

	status := constants.SyncStatusSuccess
	if !outcome.Success {
		status = constants.SyncStatusFailed
	}

	// Persistence runs on a detached context: a leg that burned the caller's
	// deadline against a slow partner must still get its log entry.
	persistCtx := context.WithoutCancel(ctx)
	log := logging.WithSync(config.ID, config.OTAName)

	entry := &gormModels.SyncLog{
		OTAConfigID:      config.ID,
		SyncType:         constants.SyncTypeAvailability,
		Status:           status,
		Message:          outcome.Message,
		RecordsProcessed: len(rooms),
		SyncStartedAt:    startedAt,
		SyncCompletedAt:  &completedAt,
	}
	if err := s.logRepo.Append(persistCtx, entry); err != nil {
		// best-effort: a log write failure must never mask the sync outcome
		log.Errorw("Failed to write sync log entry", "error", err.Error())
	}

	// last_sync_at advances on failure too: attempting counts as synced for
	// scheduling purposes.
	if err := s.configRepo.UpdateLastSync(persistCtx, config.ID, completedAt); err != nil {
		log.Errorw("Failed to update last_sync_at", "error", err.Error())
	}

	s.metrics.RecordSyncAttempt(config.OTAName, status, completedAt.Sub(startedAt).Seconds(), len(rooms))

	return outcome, completedAt
}

// TestConnection probes a partner endpoint. Inactive configurations may be
// probed; nothing is logged and last_sync_at is untouched.
func (s *SyncService) TestConnection(ctx context.Context, configID string) (*dtos.SyncResponse, error) {
	config, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrConfigNotFound
	}

	provider, ok := s.registry.Lookup(config.OTAName)
	if !ok {
		return &dtos.SyncResponse{
			Success:  false,
			Message:  fmt.Sprintf("Unsupported OTA: %s", config.OTAName),
			OTAName:  config.OTAName,
			SyncedAt: time.Now(),
		}, nil
	}

	outcome := provider.TestConnection(ctx, config)
	return &dtos.SyncResponse{
		Success:  outcome.Success,
		Message:  outcome.Message,
		OTAName:  config.OTAName,
		SyncedAt: time.Now(),
	}, nil
}

// Stats aggregates sync outcomes per partner over a named window
// ("day", "week" or "month"). Results are cached briefly.
func (s *SyncService) Stats(ctx context.Context, period string) (*dtos.SyncStatsResponse, error) {
	var window time.Duration
	switch period {
	case "week":
		window = 7 * 24 * time.Hour
	case "month":
		window = 30 * 24 * time.Hour
	default:
		period = "day"
		window = 24 * time.Hour
	}

	cacheKey := string(constants.CachePrefixSyncStats) + period
	if s.cache != nil {
		var cached dtos.SyncStatsResponse
		if s.cache.GetInto(cacheKey, &cached) {
			return &cached, nil
		}
	}

	since := time.Now().Add(-window)
	partners, err := s.logRepo.Stats(ctx, since)
	if err != nil {
		return nil, err
	}

	stats := &dtos.SyncStatsResponse{
		Period:   period,
		Since:    since,
		Partners: partners,
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, stats, statsCacheTTL)
	}

	return stats, nil
}

// ExportSnapshot renders the current availability snapshot as an OTA-style
// XML document (the Booking.com ARI shape, without credentials). Not a live
// sync: nothing is dispatched or logged.
func (s *SyncService) ExportSnapshot(ctx context.Context, configID string) ([]byte, error) {
	config, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrConfigNotFound
	}

	cacheKey := string(constants.CachePrefixExportXML) + config.ID
	if s.cache != nil {
		var cached []byte
		if s.cache.GetInto(cacheKey, &cached) {
			return cached, nil
		}
	}

	rooms, err := s.availability.BuildSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability snapshot: %w", err)
	}

	doc, err := providers.BuildExportDocument(config.HotelID, rooms)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, doc, exportCacheTTL)
	}

	return doc, nil
}
