package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// RoomRepo is the read-only view of the property-management schema the
// channel manager needs: active rooms and their booking-derived availability.
type RoomRepo struct {
	db *sqlx.DB
}

func NewRoomRepo(db *sqlx.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// AvailabilityForDate runs the NOT EXISTS availability query for one date.
// The date is compared against [check_in, check_out), so a room whose guest
// checks out on the given date counts as available.
func (r *RoomRepo) AvailabilityForDate(ctx context.Context, date time.Time) ([]entities.RoomAvailability, error) {
	day := date.UTC().Truncate(24 * time.Hour)

	query := r.db.Rebind(constants.RoomAvailabilityToday)

	var rooms []entities.RoomAvailability
	if err := r.db.SelectContext(ctx, &rooms, query, day, day, true); err != nil {
		return nil, fmt.Errorf("failed to query room availability: %w", err)
	}

	return rooms, nil
}
