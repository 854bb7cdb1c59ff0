package dtos

// CreateOTAConfigRequest is the POST /configurations body. OTAName is the
// only required field besides EndpointURL; which credential fields matter
// depends on the partner (Booking.com uses username/password, Agoda and
// Airbnb use the API key).
type CreateOTAConfigRequest struct {
	OTAName       string `json:"ota_name"`
	APIKey        string `json:"api_key,omitempty"`
	APIUsername   string `json:"api_username,omitempty"`
	APIPassword   string `json:"api_password,omitempty"`
	EndpointURL   string `json:"endpoint_url"`
	HotelID       string `json:"hotel_id,omitempty"`
	SyncFrequency int    `json:"sync_frequency,omitempty"`
}

// UpdateOTAConfigRequest is the PUT /configurations/{id} body. Pointer
// fields distinguish "leave unchanged" from "set to zero value"; empty
// credential strings are ignored so operators can update the endpoint
// without re-entering secrets.
type UpdateOTAConfigRequest struct {
	APIKey        *string `json:"api_key,omitempty"`
	APIUsername   *string `json:"api_username,omitempty"`
	APIPassword   *string `json:"api_password,omitempty"`
	EndpointURL   *string `json:"endpoint_url,omitempty"`
	HotelID       *string `json:"hotel_id,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	SyncFrequency *int    `json:"sync_frequency,omitempty"`
}

// SyncLogQuery carries the parsed sync-log listing filters
type SyncLogQuery struct {
	OTAConfigID string
	Limit       int
	Page        int
}
