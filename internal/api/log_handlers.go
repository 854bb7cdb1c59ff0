package api

import (
	"net/http"
	"strconv"

	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"
)

// ListSyncLogs handles GET /sync-logs?ota_id&limit&page
func (h *Handlers) ListSyncLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := dtos.SyncLogQuery{
			OTAConfigID: r.URL.Query().Get("ota_id"),
		}
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
			query.Limit = limit
		}
		if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
			query.Page = page
		}

		logs, err := h.deps.Repo.SyncLogs.List(r.Context(), query)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, logs)
	}
}

// SyncStats handles GET /sync-stats?period
func (h *Handlers) SyncStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")

		stats, err := h.deps.Services.Sync.Stats(r.Context(), period)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, stats)
	}
}
