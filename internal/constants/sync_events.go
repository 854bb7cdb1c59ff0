package constants

// Sync types for the sync_logs table
const (
	SyncTypeAvailability = "availability"
	SyncTypeRates        = "rates"
	SyncTypeInventory    = "inventory"
	SyncTypeBookings     = "bookings"
)

// Sync statuses for the sync_logs table.
// "partial" is defined in the schema but no adapter produces it yet; it is
// reserved for per-room outcome reporting.
const (
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
	SyncStatusPartial = "partial"
)
