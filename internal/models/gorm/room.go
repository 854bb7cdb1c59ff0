package gorm

import "time"

// Room is the hotel's own room inventory. Owned by the property-management
// side of the system; the channel manager only reads it.
type Room struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement"`
	RoomName      string    `gorm:"column:room_name;type:varchar(100);not null"`
	RoomType      string    `gorm:"column:room_type;type:varchar(50)"`
	PricePerNight float64   `gorm:"column:price_per_night;not null"`
	MaxOccupancy  int       `gorm:"column:max_occupancy;default:2"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Room) TableName() string {
	return "rooms"
}
