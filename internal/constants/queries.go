package constants

const (
	// RoomAvailabilityToday computes per-room availability for a single date.
	// A room is available unless a pending/confirmed booking covers the date
	// under the half-open [check_in, check_out) convention: a room checked
	// out today is available today. Written with '?' bindvars; callers must
	// Rebind for the active driver.
	RoomAvailabilityToday = `
	SELECT r.id,
	       r.room_name,
	       r.price_per_night,
	       r.max_occupancy,
	       NOT EXISTS (
	           SELECT 1 FROM bookings b
	           WHERE b.room_id = r.id
	             AND b.status IN ('pending', 'confirmed')
	             AND b.check_in <= ?
	             AND b.check_out > ?
	       ) AS is_available
	FROM rooms r
	WHERE r.is_active = ?
	ORDER BY r.id
	`
)
