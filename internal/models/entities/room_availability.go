package entities

// RoomAvailability is the derived per-room view dispatched to partners.
// Computed fresh for every sync; never persisted by this subsystem.
type RoomAvailability struct {
	RoomID        uint    `db:"id" json:"room_id"`
	RoomName      string  `db:"room_name" json:"room_name"`
	PricePerNight float64 `db:"price_per_night" json:"price_per_night"`
	MaxOccupancy  int     `db:"max_occupancy" json:"max_occupancy"`
	IsAvailable   bool    `db:"is_available" json:"is_available"`
}
