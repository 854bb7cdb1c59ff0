package dtos

import "time"

// APIResponse is the standard JSON envelope for every endpoint
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      *T        `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// OTAConfigResponse is the client-facing view of a configuration. Secrets
// are masked to a last-4 suffix and never leave the server in plaintext.
type OTAConfigResponse struct {
	ID            string     `json:"id"`
	OTAName       string     `json:"ota_name"`
	APIKey        string     `json:"api_key,omitempty"`
	APIUsername   string     `json:"api_username,omitempty"`
	EndpointURL   string     `json:"endpoint_url"`
	HotelID       string     `json:"hotel_id,omitempty"`
	IsActive      bool       `json:"is_active"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
	SyncFrequency int        `json:"sync_frequency"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SyncResponse is returned by POST /sync/{id} and POST /test-connection/{id}
type SyncResponse struct {
	Success          bool      `json:"success"`
	Message          string    `json:"message"`
	OTAName          string    `json:"ota_name"`
	RecordsProcessed int       `json:"records_processed,omitempty"`
	SyncedAt         time.Time `json:"synced_at"`
}

// PartnerSyncResult is one leg of a sync-all fan-out
type PartnerSyncResult struct {
	OTAConfigID string `json:"ota_config_id"`
	OTAName     string `json:"ota_name"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
}

// AggregateSyncResponse is returned by POST /sync-all
type AggregateSyncResponse struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []PartnerSyncResult `json:"results"`
	SyncedAt  time.Time           `json:"synced_at"`
}

// SyncLogResponse is one row of GET /sync-logs, joined with the partner name
type SyncLogResponse struct {
	ID               string     `json:"id"`
	OTAConfigID      string     `json:"ota_config_id"`
	OTAName          string     `json:"ota_name"`
	SyncType         string     `json:"sync_type"`
	Status           string     `json:"status"`
	Message          string     `json:"message,omitempty"`
	RecordsProcessed int        `json:"records_processed"`
	SyncStartedAt    time.Time  `json:"sync_started_at"`
	SyncCompletedAt  *time.Time `json:"sync_completed_at,omitempty"`
}

// SyncLogPage wraps a paginated log listing
type SyncLogPage struct {
	Logs       []SyncLogResponse `json:"logs"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalCount int64             `json:"total_count"`
}

// PartnerSyncStats aggregates log outcomes for one partner over a window
type PartnerSyncStats struct {
	OTAConfigID string     `json:"ota_config_id"`
	OTAName     string     `json:"ota_name"`
	Total       int        `json:"total"`
	Succeeded   int        `json:"succeeded"`
	Failed      int        `json:"failed"`
	LastSyncAt  *time.Time `json:"last_sync_at,omitempty"`
}

// SyncStatsResponse is returned by GET /sync-stats
type SyncStatsResponse struct {
	Period   string             `json:"period"`
	Since    time.Time          `json:"since"`
	Partners []PartnerSyncStats `json:"partners"`
}

// HealthResponse reports process and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}
