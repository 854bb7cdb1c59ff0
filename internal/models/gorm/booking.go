package gorm

import "time"

// Booking is read-only for the channel manager; availability derivation only
// looks at room_id, status and the stay interval.
type Booking struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	RoomID    uint      `gorm:"column:room_id;not null;index"`
	Status    string    `gorm:"column:status;type:varchar(20);not null"` // pending|confirmed|cancelled|checked_out
	CheckIn   time.Time `gorm:"column:check_in;not null"`
	CheckOut  time.Time `gorm:"column:check_out;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
