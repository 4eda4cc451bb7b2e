package domain

import "time"

// Booking Model
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`           // Primary key
	UserID    uint      `gorm:"not null;index" json:"userId"`   // Foreign key to User
	SlotID    uint      `gorm:"not null;uniqueIndex" json:"slotId"` // Foreign key to Slot; unique index is the double-booking guard
	User      User      `json:"-"`                              // Booked-by association
	Slot      Slot      `json:"slot"`                           // Booked slot association
	CreatedAt time.Time `json:"createdAt"`                      // Timestamp of creation
}
