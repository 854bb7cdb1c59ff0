package constants

// OTA Error Codes
// These constants define specific error scenarios for partner dispatch

// Transport-level errors
const (
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeTimeout      = "TIMEOUT"
	ErrCodeRateLimited  = "RATE_LIMITED"
)

// Partner-side errors
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodePartnerRejected    = "PARTNER_REJECTED"
	ErrCodeHotelNotFound      = "HOTEL_NOT_FOUND"
)

// Configuration errors
const (
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigNotActive  = "CONFIG_NOT_ACTIVE"
	ErrCodeUnsupportedOTA   = "UNSUPPORTED_OTA"
	ErrCodeDuplicateOTAName = "DUPLICATE_OTA_NAME"
)

// Error Messages
// Human-readable messages corresponding to error codes

var OTAErrorMessages = map[string]string{
	// Transport
	ErrCodeNetworkError: "Unable to reach the OTA endpoint. Please check the endpoint URL and network connectivity",
	ErrCodeTimeout:      "The OTA endpoint did not respond within the allowed time",
	ErrCodeRateLimited:  "Rate limit exceeded at the OTA. Please try again later",

	// Partner
	ErrCodeInvalidCredentials: "The OTA rejected the configured credentials",
	ErrCodePartnerRejected:    "The OTA rejected the sync payload",
	ErrCodeHotelNotFound:      "The configured hotel/listing ID was not found at the OTA",

	// Configuration
	ErrCodeConfigNotFound:   "No OTA configuration found for this ID",
	ErrCodeConfigNotActive:  "The OTA configuration is not active",
	ErrCodeUnsupportedOTA:   "No adapter is registered for this OTA",
	ErrCodeDuplicateOTAName: "A configuration for this OTA already exists",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := OTAErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
