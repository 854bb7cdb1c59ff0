package providers

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
	gormModels "github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

func sampleRooms() []entities.RoomAvailability {
	return []entities.RoomAvailability{
		{RoomID: 7, RoomName: "Deluxe", PricePerNight: 100, MaxOccupancy: 2, IsAvailable: true},
		{RoomID: 8, RoomName: "Suite", PricePerNight: 250, MaxOccupancy: 4, IsAvailable: false},
	}
}

func TestBookingComProvider_Sync_Success(t *testing.T) {
	var captured ARIUpdate

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/xml" {
			t.Errorf("Expected application/xml content type, got %s", ct)
		}

		username, password, ok := r.BasicAuth()
		if !ok || username != "hotel-user" || password != "hotel-pass" {
			t.Errorf("Expected basic auth hotel-user/hotel-pass, got %s/%s", username, password)
		}

		body, _ := io.ReadAll(r.Body)
		if err := xml.Unmarshal(body, &captured); err != nil {
			t.Errorf("Failed to decode ari_update payload: %v", err)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<ok/>`))
	}))
	defer server.Close()

	provider := NewBookingComProvider(&http.Client{})
	config := &gormModels.OTAConfig{
		OTAName:     "booking_com",
		APIUsername: "hotel-user",
		APIPassword: "hotel-pass",
		EndpointURL: server.URL,
		HotelID:     "BC-123",
	}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if !outcome.Success {
		t.Fatalf("Expected success, got failure: %s", outcome.Message)
	}

	if captured.HotelID != "BC-123" {
		t.Errorf("Expected hotel_id BC-123, got %s", captured.HotelID)
	}
	if captured.Authentication == nil || captured.Authentication.Username != "hotel-user" {
		t.Error("Expected authentication block with username")
	}
	if len(captured.Rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(captured.Rooms))
	}

	first := captured.Rooms[0]
	if first.RoomID != 7 || first.Rate != 100 || first.Availability != 1 || first.Inventory != 1 {
		t.Errorf("Unexpected first room: %+v", first)
	}
	if first.Restrictions.MinStay != 1 || first.Restrictions.MaxStay != 30 {
		t.Errorf("Unexpected restrictions: %+v", first.Restrictions)
	}
	if captured.Rooms[1].Availability != 0 {
		t.Errorf("Expected unavailable room to map to 0, got %d", captured.Rooms[1].Availability)
	}
}

func TestBookingComProvider_Sync_PartnerRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`<error>bad payload</error>`))
	}))
	defer server.Close()

	provider := NewBookingComProvider(&http.Client{})
	config := &gormModels.OTAConfig{EndpointURL: server.URL}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if outcome.Success {
		t.Fatal("Expected failure for 400 response")
	}
	if !strings.Contains(outcome.Message, "Booking.com sync failed") {
		t.Errorf("Expected partner-prefixed failure message, got %q", outcome.Message)
	}
}

func TestBookingComProvider_Sync_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	provider := NewBookingComProvider(&http.Client{})
	config := &gormModels.OTAConfig{EndpointURL: server.URL}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if outcome.Success {
		t.Fatal("Expected failure for refused connection")
	}
	if !strings.Contains(outcome.Message, "Booking.com sync failed") {
		t.Errorf("Expected failure message, got %q", outcome.Message)
	}
}

func TestBookingComProvider_Sync_DeadlineResolvesToFailure(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	provider := NewBookingComProvider(&http.Client{})
	config := &gormModels.OTAConfig{EndpointURL: server.URL}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan SyncOutcome, 1)
	go func() {
		done <- provider.Sync(ctx, config, sampleRooms())
	}()

	select {
	case outcome := <-done:
		if outcome.Success {
			t.Fatal("Expected timed-out sync to fail")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Sync did not resolve after deadline")
	}
}

func TestBookingComProvider_TestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("Expected basic auth on connection test")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := NewBookingComProvider(&http.Client{})
	config := &gormModels.OTAConfig{
		APIUsername: "u",
		APIPassword: "p",
		EndpointURL: server.URL,
	}

	outcome := provider.TestConnection(context.Background(), config)
	if !outcome.Success {
		t.Fatalf("Expected connection success, got: %s", outcome.Message)
	}
}

func TestBuildExportDocument_OmitsCredentials(t *testing.T) {
	doc, err := BuildExportDocument("BC-123", sampleRooms())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	text := string(doc)
	if strings.Contains(text, "authentication") {
		t.Error("Export document must not contain an authentication block")
	}
	if !strings.Contains(text, "<hotel_id>BC-123</hotel_id>") {
		t.Errorf("Expected hotel_id element, got: %s", text)
	}

	var parsed ARIUpdate
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("Export document is not valid XML: %v", err)
	}
	if len(parsed.Rooms) != 2 {
		t.Errorf("Expected 2 rooms in export, got %d", len(parsed.Rooms))
	}
}
