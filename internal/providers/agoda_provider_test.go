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

func TestAgodaProvider_Sync_Success(t *testing.T) {
	var captured agodaPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer k1" {
			t.Errorf("Expected Bearer k1, got %s", auth)
		}
		if hotel := r.Header.Get("X-Hotel-Id"); hotel != "H1" {
			t.Errorf("Expected X-Hotel-Id H1, got %s", hotel)
		}

		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"accepted"}`))
	}))
	defer server.Close()

	provider := NewAgodaProvider(&http.Client{})
	config := &gormModels.OTAConfig{
		OTAName:     "agoda",
		APIKey:      "k1",
		EndpointURL: server.URL,
		HotelID:     "H1",
	}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if !outcome.Success {
		t.Fatalf("Expected success, got failure: %s", outcome.Message)
	}

	if captured.HotelID != "H1" {
		t.Errorf("Expected HotelId H1, got %s", captured.HotelID)
	}
	if !strings.HasPrefix(captured.RequestID, "agoda_") {
		t.Errorf("Expected agoda_ request ID prefix, got %s", captured.RequestID)
	}
	if len(captured.Rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(captured.Rooms))
	}

	first := captured.Rooms[0]
	if first.RoomID != 7 || first.RoomType != "Deluxe" {
		t.Errorf("Unexpected first room: %+v", first)
	}
	if len(first.Rates) != 1 {
		t.Fatalf("Expected 1 rate, got %d", len(first.Rates))
	}

	rate := first.Rates[0]
	if rate.RatePlan != "Standard" || rate.Rate != 100 || rate.Availability != 1 || rate.Inventory != 1 {
		t.Errorf("Unexpected rate: %+v", rate)
	}
	if rate.Date != time.Now().Format("2006-01-02") {
		t.Errorf("Expected today's date, got %s", rate.Date)
	}

	if captured.Rooms[1].Rates[0].Availability != 0 {
		t.Errorf("Expected unavailable room to map to 0")
	}
}

func TestAgodaProvider_Sync_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal"}`))
	}))
	defer server.Close()

	provider := NewAgodaProvider(&http.Client{})
	config := &gormModels.OTAConfig{APIKey: "k1", EndpointURL: server.URL, HotelID: "H1"}

	outcome := provider.Sync(context.Background(), config, sampleRooms())

	if outcome.Success {
		t.Fatal("Expected failure for 500 response")
	}
	if !strings.Contains(outcome.Message, "Agoda sync failed") {
		t.Errorf("Expected partner-prefixed failure message, got %q", outcome.Message)
	}
}

func TestAgodaProvider_TestConnection_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	provider := NewAgodaProvider(&http.Client{})
	config := &gormModels.OTAConfig{APIKey: "wrong", EndpointURL: server.URL, HotelID: "H1"}

	outcome := provider.TestConnection(context.Background(), config)

	if outcome.Success {
		t.Fatal("Expected connection failure for 401")
	}
	if !strings.Contains(outcome.Message, "Agoda connection failed") {
		t.Errorf("Expected connection failure message, got %q", outcome.Message)
	}
}
