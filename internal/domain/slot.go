package domain

import "time"

// Slot Model
type Slot struct {
	ID      uint      `gorm:"primaryKey" json:"id"`                             // Primary key
	StartAt time.Time `gorm:"not null;uniqueIndex:idx_slot_window" json:"startAt"` // Interval start
	EndAt   time.Time `gorm:"not null;uniqueIndex:idx_slot_window" json:"endAt"`   // Interval end, always StartAt + 30 minutes
}
