package services

import (
	"context"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
)

// AvailabilityService builds the point-in-time room snapshot dispatched to
// partners. Pure read: computed fresh per call, never cached, no side
// effects.
type AvailabilityService struct {
	rooms *repositories.RoomRepo
	now   func() time.Time
}

func NewAvailabilityService(rooms *repositories.RoomRepo) *AvailabilityService {
	return &AvailabilityService{rooms: rooms, now: time.Now}
}

// BuildSnapshot returns availability for every active room "today". The
// inventory is assumed operationally small (hundreds of rooms); there is no
// pagination.
func (s *AvailabilityService) BuildSnapshot(ctx context.Context) ([]entities.RoomAvailability, error) {
	return s.rooms.AvailabilityForDate(ctx, s.now())
}
