package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// syncAllDeadline bounds the whole fan-out; individual legs are already
// capped by the per-partner dispatch timeouts.
const syncAllDeadline = 2 * time.Minute

// TriggerSync handles POST /sync/{id}. Partner-side failures come back as
// 200 with success=false; only pre-dispatch problems (unknown or inactive
// configuration) get a 4xx.
func (h *Handlers) TriggerSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		result, err := h.deps.Services.Sync.SyncOne(r.Context(), id)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// TriggerSyncAll handles POST /sync-all
func (h *Handlers) TriggerSyncAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), syncAllDeadline)
		defer cancel()

		result, err := h.deps.Services.Sync.SyncAll(ctx)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// TestConnection handles POST /test-connection/{id}. Works on inactive
// configurations too; read-only probing.
func (h *Handlers) TestConnection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		result, err := h.deps.Services.Sync.TestConnection(r.Context(), id)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// ExportXML handles GET /export-xml/{id}: the current snapshot rendered as
// an OTA-style ARI document, without a live dispatch.
func (h *Handlers) ExportXML() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		doc, err := h.deps.Services.Sync.ExportSnapshot(r.Context(), id)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/xml")
		w.Header().Set("Content-Disposition", `attachment; filename="availability_export.xml"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	}
}
