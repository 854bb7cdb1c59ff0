package services

import "errors"

// Client-facing failures surfaced before any network call is attempted
var (
	ErrConfigNotFound   = errors.New("OTA configuration not found")
	ErrConfigInactive   = errors.New("OTA configuration is not active")
	ErrNoActiveConfigs  = errors.New("No active OTA configurations found")
	ErrDuplicateOTAName = errors.New("an OTA configuration with this name already exists")
	ErrMissingOTAName   = errors.New("ota_name is required")
	ErrMissingEndpoint  = errors.New("endpoint_url is required")
)
