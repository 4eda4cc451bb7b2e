package db

import (
	"time" // Time arithmetic for the slot grid

	"booking_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Slot grid parameters: 09:00-17:00 in 30-minute steps, for 7 days
const (
	gridDays      = 7                // Rolling window length in days
	gridStartHour = 9                // First slot starts at 09:00
	gridEndHour   = 17               // Last slot ends at 17:00
	slotLength    = 30 * time.Minute // Slot granularity
)

// GenerateSlots materializes the bookable slot grid for the next gridDays
// calendar days starting at local midnight of now. Each (StartAt, EndAt)
// pair is inserted only if absent, so repeated runs never duplicate, mutate
// or remove slots; the composite unique index on the pair is the backstop.
// Slots that have rolled out of the window are intentionally left in place.
func GenerateSlots(db *gorm.DB, now time.Time) error {
	// Local midnight of "today"
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	created := 0 // Count of newly inserted slots
	for day := 0; day < gridDays; day++ {
		dayStart := midnight.AddDate(0, 0, day).Add(gridStartHour * time.Hour) // 09:00 of this day
		dayEnd := midnight.AddDate(0, 0, day).Add(gridEndHour * time.Hour)     // 17:00 of this day
		for start := dayStart; start.Before(dayEnd); start = start.Add(slotLength) {
			slot := domain.Slot{StartAt: start, EndAt: start.Add(slotLength)}
			// Insert only when no slot has this exact window
			res := db.Where("start_at = ? AND end_at = ?", slot.StartAt, slot.EndAt).FirstOrCreate(&slot)
			if res.Error != nil {
				return res.Error // Abort generation on store failure
			}
			if res.RowsAffected > 0 {
				created++ // FirstOrCreate inserted a new row
			}
		}
	}
	logrus.WithField("created", created).Info("Slot grid generated") // Log generation result
	return nil
}
