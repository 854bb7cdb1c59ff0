package services

import (
	"context"
	"testing"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func setupRoomDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE rooms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_name TEXT NOT NULL,
		room_type TEXT,
		price_per_night REAL NOT NULL,
		max_occupancy INTEGER DEFAULT 2,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME
	);
	CREATE TABLE bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		check_in DATETIME NOT NULL,
		check_out DATETIME NOT NULL,
		created_at DATETIME
	);`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func insertRoom(t *testing.T, db *sqlx.DB, name string, price float64, active bool) int64 {
	res, err := db.Exec(
		`INSERT INTO rooms (room_name, price_per_night, max_occupancy, is_active) VALUES (?, ?, ?, ?)`,
		name, price, 2, active,
	)
	if err != nil {
		t.Fatalf("Failed to insert room: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func insertBooking(t *testing.T, db *sqlx.DB, roomID int64, status string, checkIn, checkOut time.Time) {
	_, err := db.Exec(
		`INSERT INTO bookings (room_id, status, check_in, check_out) VALUES (?, ?, ?, ?)`,
		roomID, status, checkIn, checkOut,
	)
	if err != nil {
		t.Fatalf("Failed to insert booking: %v", err)
	}
}

func TestAvailabilityService_BuildSnapshot(t *testing.T) {
	db := setupRoomDB(t)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	occupied := insertRoom(t, db, "Deluxe", 100, true)
	free := insertRoom(t, db, "Standard", 60, true)
	cancelledOnly := insertRoom(t, db, "Suite", 250, true)
	checkoutToday := insertRoom(t, db, "Twin", 80, true)
	insertRoom(t, db, "Storage", 0, false) // inactive, must not appear

	// Confirmed booking spanning today blocks the room
	insertBooking(t, db, occupied, "confirmed", today.AddDate(0, 0, -2), today.AddDate(0, 0, 1))
	// Cancelled bookings never block
	insertBooking(t, db, cancelledOnly, "cancelled", today.AddDate(0, 0, -1), today.AddDate(0, 0, 2))
	// Half-open interval: checkout today means available today
	insertBooking(t, db, checkoutToday, "confirmed", today.AddDate(0, 0, -3), today)

	svc := NewAvailabilityService(repositories.NewRoomRepo(db))

	rooms, err := svc.BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(rooms) != 4 {
		t.Fatalf("Expected 4 active rooms, got %d", len(rooms))
	}

	byID := make(map[uint]bool, len(rooms))
	for _, room := range rooms {
		byID[room.RoomID] = room.IsAvailable
	}

	if byID[uint(occupied)] {
		t.Error("Room with confirmed overlapping booking must be unavailable")
	}
	if !byID[uint(free)] {
		t.Error("Room with no bookings must be available")
	}
	if !byID[uint(cancelledOnly)] {
		t.Error("Room with only cancelled bookings must be available")
	}
	if !byID[uint(checkoutToday)] {
		t.Error("Room checked out today must be available today")
	}
}

func TestAvailabilityService_BuildSnapshot_PendingBlocks(t *testing.T) {
	db := setupRoomDB(t)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	pending := insertRoom(t, db, "Deluxe", 100, true)
	insertBooking(t, db, pending, "pending", today, today.AddDate(0, 0, 2))

	svc := NewAvailabilityService(repositories.NewRoomRepo(db))

	rooms, err := svc.BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("Expected 1 room, got %d", len(rooms))
	}
	if rooms[0].IsAvailable {
		t.Error("Pending booking starting today must block the room")
	}
}

func TestAvailabilityService_BuildSnapshot_Empty(t *testing.T) {
	db := setupRoomDB(t)

	svc := NewAvailabilityService(repositories.NewRoomRepo(db))

	rooms, err := svc.BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("Expected empty snapshot, got %d rooms", len(rooms))
	}
}
