package providers

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
	"github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

// BookingComProvider implements OTAProvider for Booking.com. The wire format
// is an ari_update XML document posted with HTTP Basic auth.
type BookingComProvider struct {
	client *http.Client
}

// NewBookingComProvider creates a new Booking.com adapter
func NewBookingComProvider(client *http.Client) *BookingComProvider {
	return &BookingComProvider{client: client}
}

// PartnerType returns the partner identifier
func (p *BookingComProvider) PartnerType() constants.OTAPartner {
	return constants.PartnerBookingCom
}

// ARIUpdate is the root of the Booking.com payload. Also reused by the
// export endpoint, which builds the same document without the
// authentication block.
type ARIUpdate struct {
	XMLName        xml.Name           `xml:"ari_update"`
	Authentication *ARIAuthentication `xml:"authentication,omitempty"`
	HotelID        string             `xml:"hotel_id"`
	Rooms          []ARIRoom          `xml:"rooms>room"`
}

type ARIAuthentication struct {
	Username string `xml:"username"`
	Password string `xml:"password"`
}

type ARIRoom struct {
	RoomID       uint            `xml:"room_id"`
	RoomName     string          `xml:"room_name"`
	Rate         float64         `xml:"rate"`
	Availability int             `xml:"availability"`
	Inventory    int             `xml:"inventory"`
	Restrictions ARIRestrictions `xml:"restrictions"`
}

type ARIRestrictions struct {
	MinStay           int `xml:"min_stay"`
	MaxStay           int `xml:"max_stay"`
	ClosedToArrival   int `xml:"closed_to_arrival"`
	ClosedToDeparture int `xml:"closed_to_departure"`
}

// BuildARIRooms maps a snapshot onto the ARI room list. Inventory is fixed
// at 1 per room and restrictions carry Booking.com's defaults (min 1 night,
// max 30, open to arrival and departure).
func BuildARIRooms(rooms []entities.RoomAvailability) []ARIRoom {
	out := make([]ARIRoom, len(rooms))
	for i, room := range rooms {
		availability := 0
		if room.IsAvailable {
			availability = 1
		}
		out[i] = ARIRoom{
			RoomID:       room.RoomID,
			RoomName:     room.RoomName,
			Rate:         room.PricePerNight,
			Availability: availability,
			Inventory:    1,
			Restrictions: ARIRestrictions{
				MinStay:           1,
				MaxStay:           30,
				ClosedToArrival:   0,
				ClosedToDeparture: 0,
			},
		}
	}
	return out
}

// BuildExportDocument renders the ARI XML for the generic export endpoint.
// Credentials are omitted: the export is a snapshot dump, not a live sync.
func BuildExportDocument(hotelID string, rooms []entities.RoomAvailability) ([]byte, error) {
	doc := ARIUpdate{
		HotelID: hotelID,
		Rooms:   BuildARIRooms(rooms),
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ARI document: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Sync pushes the snapshot as an ari_update document
func (p *BookingComProvider) Sync(ctx context.Context, config *gorm.OTAConfig, rooms []entities.RoomAvailability) SyncOutcome {
	ctx, cancel := context.WithTimeout(ctx, SyncTimeout)
	defer cancel()

	doc := ARIUpdate{
		Authentication: &ARIAuthentication{
			Username: config.APIUsername,
			Password: config.APIPassword,
		},
		HotelID: config.HotelID,
		Rooms:   BuildARIRooms(rooms),
	}

	payload, err := xml.Marshal(doc)
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Booking.com sync failed: %v", err)}
	}
	payload = append([]byte(xml.Header), payload...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Booking.com sync failed: %v", err)}
	}

	req.Header.Set("Content-Type", "application/xml")
	req.SetBasicAuth(config.APIUsername, config.APIPassword)

	resp, err := p.client.Do(req)
	if err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Booking.com sync failed: %v", transportError(err))}
	}
	defer resp.Body.Close()

	if err := handleHTTPError(resp); err != nil {
		return SyncOutcome{Success: false, Message: fmt.Sprintf("Booking.com sync failed: %v", err)}
	}

	return SyncOutcome{
		Success:     true,
		Message:     fmt.Sprintf("Booking.com sync completed for %d rooms", len(rooms)),
		RawResponse: readBody(resp),
	}
}

// TestConnection probes the endpoint with the configured Basic credentials
func (p *BookingComProvider) TestConnection(ctx context.Context, config *gorm.OTAConfig) ConnectionOutcome {
	ctx, cancel := context.WithTimeout(ctx, TestConnectionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.EndpointURL, nil)
	if err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Booking.com connection failed: %v", err)}
	}
	req.SetBasicAuth(config.APIUsername, config.APIPassword)

	resp, err := p.client.Do(req)
	if err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Booking.com connection failed: %v", transportError(err))}
	}
	defer resp.Body.Close()

	if err := handleHTTPError(resp); err != nil {
		return ConnectionOutcome{Success: false, Message: fmt.Sprintf("Booking.com connection failed: %v", err)}
	}

	return ConnectionOutcome{Success: true, Message: "Booking.com connection successful"}
}
