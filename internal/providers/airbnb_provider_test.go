package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gormModels "github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

func TestAirbnbProvider_Sync_Success(t *testing.T) {
	var captured airbnbPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Errorf("Expected Bearer token-1, got %s", auth)
		}
		if version := r.Header.Get("X-Airbnb-API-Version"); version != "1.0" {
			t.Errorf("Expected API version 1.0, got %s", version)
		}

		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	provider := NewAirbnbProvider(&http.Client{})
	config := &gormModels.OTAConfig{
		OTAName:     "airbnb",
		APIKey:      "token-1",
		EndpointURL: server.URL,
		HotelID:     "L-42",
	}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if !outcome.Success {
		t.Fatalf("Expected success, got failure: %s", outcome.Message)
	}

	if captured.ListingID != "L-42" {
		t.Errorf("Expected listing_id L-42, got %s", captured.ListingID)
	}
	if len(captured.Operations) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(captured.Operations))
	}

	first := captured.Operations[0]
	if first.RoomID != "7" {
		t.Errorf("Expected string room_id 7, got %q", first.RoomID)
	}
	if !first.Availability {
		t.Error("Expected first room to be available")
	}
	if first.Price.Amount != 100 || first.Price.Currency != "USD" {
		t.Errorf("Unexpected price: %+v", first.Price)
	}
	if first.MinimumNights != 1 {
		t.Errorf("Expected minimum_nights 1, got %d", first.MinimumNights)
	}
	if first.Date != time.Now().Format("2006-01-02") {
		t.Errorf("Expected today's date, got %s", first.Date)
	}

	if captured.Operations[1].Availability {
		t.Error("Expected second room to be unavailable")
	}
}

func TestAirbnbProvider_Sync_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewAirbnbProvider(&http.Client{})
	config := &gormModels.OTAConfig{APIKey: "t", EndpointURL: server.URL, HotelID: "L-42"}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if outcome.Success {
		t.Fatal("Expected failure for 429 response")
	}
	if !strings.Contains(outcome.Message, "Airbnb sync failed") {
		t.Errorf("Expected partner-prefixed failure message, got %q", outcome.Message)
	}
}

func TestAirbnbProvider_TestConnection_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := NewAirbnbProvider(&http.Client{})
	config := &gormModels.OTAConfig{APIKey: "t", EndpointURL: server.URL}

	outcome := provider.TestConnection(context.Background(), config)
	if !outcome.Success {
		t.Fatalf("Expected connection success, got: %s", outcome.Message)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry(&http.Client{})

	cases := []struct {
		name      string
		supported bool
	}{
		{"booking_com", true},
		{"Booking_Com", true},
		{" agoda ", true},
		{"airbnb", true},
		{"expedia", false},
		{"", false},
	}

	for _, tc := range cases {
		_, ok := registry.Lookup(tc.name)
		if ok != tc.supported {
			t.Errorf("Lookup(%q) = %v, want %v", tc.name, ok, tc.supported)
		}
	}

	if len(registry.Partners()) != 3 {
		t.Errorf("Expected 3 registered partners, got %d", len(registry.Partners()))
	}
}
