package api

import (
	"net/http"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler reports process uptime and database reachability
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := dtos.HealthResponse{
			Status:   "ok",
			Database: "ok",
			Uptime:   time.Since(upSince).Truncate(time.Second).String(),
		}

		if db == nil {
			resp.Database = "not configured"
		} else if err := db.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
		}

		code := http.StatusOK
		if resp.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		respondWithSuccess(w, code, &resp)
	}
}
