package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
	"github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

// AirbnbProvider implements OTAProvider for Airbnb. The wire format is a
// JSON batch of per-room operations against a listing, authenticated with a
// Bearer token and pinned to API version 1.0.
type AirbnbProvider struct {
	client *http.Client
}

// NewAirbnbProvider creates a new Airbnb adapter
func NewAirbnbProvider(client *http.Client) *AirbnbProvider {
	return &AirbnbProvider{client: client}
}

// PartnerType returns the partner identifier
func (p *AirbnbProvider) PartnerType() constants.OTAPartner {
	return constants.PartnerAirbnb
}

// Airbnb API payload structures

type airbnbPayload struct {
	ListingID  string            `json:"listing_id"`
	Operations []airbnbOperation `json:"operations"`
}

type airbnbOperation struct {
	RoomID        string      `json:"room_id"`
	Availability  bool        `json:"availability"`
	Price         airbnbPrice `json:"price"`
	Date          string      `json:"date"`
	MinimumNights int         `json:"minimum_nights"`
}

type airbnbPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (p *AirbnbProvider) buildPayload(config *gorm.OTAConfig, rooms []entities.RoomAvailability, now time.Time) airbnbPayload {
	today := now.Format("2006-01-02")

	payload := airbnbPayload{
		ListingID:  config.HotelID,
		Operations: make([]airbnbOperation, len(rooms)),
	}

	for i, room := range rooms {
		payload.Operations[i] = airbnbOperation{
			RoomID:       strconv.FormatUint(uint64(room.RoomID), 10),
			Availability: room.IsAvailable,
			Price: airbnbPrice{
				Amount:   room.PricePerNight,
				Currency: "USD",
			},
			Date:          today,
			MinimumNights: 1,
		}
	}

	return payload
}

// Sync pushes the snapshot as an Airbnb operations batch
func (p *AirbnbProvider) Sync(ctx context.Context, config *gorm.OTAConfig, rooms []entities.RoomAvailability) SyncOutcome {
	ctx, cancel := context.WithTimeout(ctx, SyncTimeout)
	defer cancel()

	payload, err := json.Marshal(p.buildPayload(config, rooms, time.Now()))
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Airbnb sync failed: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Airbnb sync failed: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.APIKey)
	req.Header.Set("X-Airbnb-API-Version", "1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Airbnb sync failed: %v", transportError(err))}
	}
	defer resp.Body.Close()

	if err := handleHTTPError(resp); err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Airbnb sync failed: %v", err)}
	}

	return SyncOutcome{
		Success:     true,
		Message:     fmt.Sprintf("Airbnb sync completed for %d rooms", len(rooms)),
		RawResponse: readBody(resp),
	}
}

// TestConnection probes the endpoint with the configured Bearer token
func (p *AirbnbProvider) TestConnection(ctx context.Context, config *gorm.OTAConfig) ConnectionOutcome {
	ctx, cancel := context.WithTimeout(ctx, TestConnectionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.EndpointURL, nil)
	if err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Airbnb connection failed: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+config.APIKey)
	req.Header.Set("X-Airbnb-API-Version", "1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Airbnb connection failed: %v", transportError(err))}
	}
	defer resp.Body.Close()

	if err := handleHTTPError(resp); err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Airbnb connection failed: %v", err)}
	}

	return ConnectionOutcome{Success: true, Message: "Airbnb connection successful"}
}
