package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"
	"github.com/Abishekkhanal/channelManager2/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := dtos.APIResponse[T]{
		Status:    string(constants.APIStatusSuccess),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := dtos.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// statusForError maps service errors onto HTTP status codes. Partner-side
// sync failures never reach here: they come back as 200 with success=false.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrConfigNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateOTAName):
		return http.StatusConflict
	case errors.Is(err, services.ErrConfigInactive),
		errors.Is(err, services.ErrNoActiveConfigs),
		errors.Is(err, services.ErrMissingOTAName),
		errors.Is(err, services.ErrMissingEndpoint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
