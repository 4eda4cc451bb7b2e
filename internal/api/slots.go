package api

import (
	"net/http" // HTTP status codes
	"time"     // Bound parsing

	"booking_system/internal/domain"  // Importing domain models
	"booking_system/internal/httperr" // Error taxonomy

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// parseBound parses an RFC3339 timestamp or a bare date. A date-only value
// used as an upper bound is widened to cover that entire day, keeping the
// bound inclusive.
func parseBound(value string, upper bool) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	t, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if upper {
		// End of the named day
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, true
}

// ListSlotsHandler returns unbooked slots ascending by start time, optionally
// bounded by inclusive from/to on the start time
func ListSlotsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only slots with no associated booking are open
		query := db.Model(&domain.Slot{}).
			Select("slots.*").
			Joins("LEFT JOIN bookings ON bookings.slot_id = slots.id").
			Where("bookings.id IS NULL")
		// Apply the lower bound when given
		if from := c.Query("from"); from != "" {
			t, ok := parseBound(from, false)
			if !ok {
				Fail(c, httperr.Validation("INVALID_DATE", "from must be an ISO date or RFC3339 timestamp"))
				return
			}
			query = query.Where("slots.start_at >= ?", t) // Filter by start date
		}
		// Apply the upper bound when given
		if to := c.Query("to"); to != "" {
			t, ok := parseBound(to, true)
			if !ok {
				Fail(c, httperr.Validation("INVALID_DATE", "to must be an ISO date or RFC3339 timestamp"))
				return
			}
			query = query.Where("slots.start_at <= ?", t) // Filter by end date
		}
		var slots []domain.Slot // Slice to hold open slots
		// Fetch matching slots in ascending start order
		if err := query.Order("slots.start_at asc").Find(&slots).Error; err != nil {
			FailInternal(c, "FETCH_SLOTS_FAILED", err) // If fetching fails, return error
			return
		}
		// An empty result is a list, not null
		if slots == nil {
			slots = []domain.Slot{}
		}
		c.JSON(http.StatusOK, slots) // Return the open slots
	}
}
