package api

import (
	"net/http"
	"os"

	"github.com/Abishekkhanal/channelManager2/internal/common"
	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"
	"github.com/Abishekkhanal/channelManager2/internal/logging"
	"github.com/Abishekkhanal/channelManager2/internal/metrics"
	"github.com/Abishekkhanal/channelManager2/internal/providers"
	"github.com/Abishekkhanal/channelManager2/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Dependencies wires repositories and services once at startup
type Dependencies struct {
	Repo struct {
		Configs  *repositories.OTAConfigRepo
		SyncLogs *repositories.SyncLogRepo
		Rooms    *repositories.RoomRepo
	}
	Services struct {
		Config       *services.ConfigService
		Availability *services.AvailabilityService
		Sync         *services.SyncService
	}
	Cache    common.CacheInterface
	Registry *providers.Registry
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies builds the dependency graph. One HTTP client is shared
// by every partner adapter; per-call deadlines come from context.
func InitDependencies(gormDB *gorm.DB, sqlxDB *sqlx.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	deps := &Dependencies{Metrics: metricsReg}

	// Cache backend: Redis when configured, in-memory otherwise
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			deps.Cache = common.NewCacheService(60, 120)
		} else {
			deps.Cache = redisCache
		}
	} else {
		deps.Cache = common.NewCacheService(60, 120)
	}

	deps.Registry = providers.NewRegistry(&http.Client{})

	deps.Repo.Configs = repositories.NewOTAConfigRepo(gormDB)
	deps.Repo.SyncLogs = repositories.NewSyncLogRepo(gormDB)
	deps.Repo.Rooms = repositories.NewRoomRepo(sqlxDB)

	deps.Services.Config = services.NewConfigService(deps.Repo.Configs)
	deps.Services.Availability = services.NewAvailabilityService(deps.Repo.Rooms)
	deps.Services.Sync = services.NewSyncService(
		deps.Repo.Configs,
		deps.Repo.SyncLogs,
		deps.Services.Availability,
		deps.Registry,
		deps.Cache,
		metricsReg,
	)

	return deps, nil
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}

// Handlers bundles all HTTP handlers over the shared dependency graph
type Handlers struct {
	deps *Dependencies
}
