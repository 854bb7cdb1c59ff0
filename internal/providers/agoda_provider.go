package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
	"github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

// AgodaProvider implements OTAProvider for Agoda. The wire format is a JSON
// rate/availability push authenticated with a Bearer token plus an
// X-Hotel-Id header.
type AgodaProvider struct {
	client *http.Client
}

// NewAgodaProvider creates a new Agoda adapter
func NewAgodaProvider(client *http.Client) *AgodaProvider {
	return &AgodaProvider{client: client}
}

// PartnerType returns the partner identifier
func (p *AgodaProvider) PartnerType() constants.OTAPartner {
	return constants.PartnerAgoda
}

// Agoda API payload structures

type agodaPayload struct {
	HotelID   string      `json:"HotelId"`
	RequestID string      `json:"RequestId"`
	Rooms     []agodaRoom `json:"Rooms"`
}

type agodaRoom struct {
	RoomID   uint        `json:"RoomId"`
	RoomType string      `json:"RoomType"`
	Rates    []agodaRate `json:"Rates"`
}

type agodaRate struct {
	RatePlan     string  `json:"RatePlan"`
	Rate         float64 `json:"Rate"`
	Date         string  `json:"Date"`
	Availability int     `json:"Availability"`
	Inventory    int     `json:"Inventory"`
}

func (p *AgodaProvider) buildPayload(config *gorm.OTAConfig, rooms []entities.RoomAvailability, now time.Time) agodaPayload {
	today := now.Format("2006-01-02")

	payload := agodaPayload{
		HotelID:   config.HotelID,
		RequestID: fmt.Sprintf("agoda_%d", now.UnixMilli()),
		Rooms:     make([]agodaRoom, len(rooms)),
	}

	for i, room := range rooms {
		availability := 0
		if room.IsAvailable {
			availability = 1
		}
		payload.Rooms[i] = agodaRoom{
			RoomID:   room.RoomID,
			RoomType: room.RoomName,
			Rates: []agodaRate{
				{
					RatePlan:     "Standard",
					Rate:         room.PricePerNight,
					Date:         today,
					Availability: availability,
					Inventory:    1,
				},
			},
		}
	}

	return payload
}

// Sync pushes the snapshot as an Agoda rate/availability update
func (p *AgodaProvider) Sync(ctx context.Context, config *gorm.OTAConfig, rooms []entities.RoomAvailability) SyncOutcome {
	ctx, cancel := context.WithTimeout(ctx, SyncTimeout)
	defer cancel()

	payload, err := json.Marshal(p.buildPayload(config, rooms, time.Now()))
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Agoda sync failed: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Agoda sync failed: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.APIKey)
	req.Header.Set("X-Hotel-Id", config.HotelID)

	resp, err := p.client.Do(req)
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Agoda sync failed: %v", transportError(err))}
	}
	defer resp.Body.Close()

	if err := handleHTTPError(resp); err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Agoda sync failed: %v", err)}
	}

	return SyncOutcome{
		Success:     true,
		Message:     fmt.Sprintf("Agoda sync completed for %d rooms", len(rooms)),
		RawResponse: readBody(resp),
	}
}

// TestConnection probes the endpoint with the configured Bearer token
func (p *AgodaProvider) TestConnection(ctx context.Context, config *gorm.OTAConfig) ConnectionOutcome {
	ctx, cancel := context.WithTimeout(ctx, TestConnectionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.EndpointURL, nil)
	if err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Agoda connection failed: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+config.APIKey)
	req.Header.Set("X-Hotel-Id", config.HotelID)

	resp, err := p.client.Do(req)
	if err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Agoda connection failed: %v", transportError(err))}
	}
	defer resp.Body.Close()

	if err := handleHTTPError(resp); err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Agoda connection failed: %v", err)}
	}

	return ConnectionOutcome{Success: true, Message: "Agoda connection successful"}
}
