package api

import (
	"encoding/json"
	"net/http"

	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// ListConfigurations handles GET /configurations. Secrets are masked.
func (h *Handlers) ListConfigurations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs, err := h.deps.Services.Config.List(r.Context())
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, &configs)
	}
}

// CreateConfiguration handles POST /configurations
func (h *Handlers) CreateConfiguration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateOTAConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		config, err := h.deps.Services.Config.Create(r.Context(), &req)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusCreated, config)
	}
}

// UpdateConfiguration handles PUT /configurations/{id}
func (h *Handlers) UpdateConfiguration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.UpdateOTAConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		config, err := h.deps.Services.Config.Update(r.Context(), id, &req)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, config)
	}
}

// DeleteConfiguration handles DELETE /configurations/{id}
func (h *Handlers) DeleteConfiguration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := h.deps.Services.Config.Delete(r.Context(), id); err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}

		msg := struct {
			Message string `json:"message"`
		}{Message: "configuration deleted"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
