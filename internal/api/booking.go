package api

import (
	"errors"   // For error matching
	"net/http" // HTTP status codes
	"time"     // Response timestamps

	"booking_system/internal/domain"     // Importing domain models
	"booking_system/internal/httperr"    // Error taxonomy
	"booking_system/internal/middleware" // Context keys

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// BookRequest represents a booking request
type BookRequest struct {
	SlotID uint `json:"slotId"` // Target slot ID
}

// BookingResponse is a booking joined with its slot and the reduced user
type BookingResponse struct {
	ID        uint              `json:"id"`        // Booking ID
	Slot      domain.Slot       `json:"slot"`      // Booked slot
	User      domain.PublicUser `json:"user"`      // Reduced user projection
	CreatedAt time.Time         `json:"createdAt"` // Timestamp of creation
}

// toResponse maps a booking with preloaded associations to the response shape
func toResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,            // Booking ID
		Slot:      b.Slot,          // Booked slot
		User:      b.User.Public(), // Reduced user, never the hash
		CreatedAt: b.CreatedAt,     // Timestamp of creation
	}
}

// BookSlotHandler reserves a slot for the authenticated user. The pre-check
// on an existing booking only shortcuts the common case; the unique index on
// bookings.slot_id is the arbiter under concurrent requests, and its
// violation is reported exactly like a lost pre-check.
func BookSlotHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.CtxUserID) // Authenticated user ID
		var req BookRequest                       // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.SlotID == 0 {
			// If binding fails or slotId is absent, return bad request
			Fail(c, httperr.Validation("MISSING_SLOT_ID", "slotId is required"))
			return
		}
		var slot domain.Slot // Fetch the target slot
		if err := db.First(&slot, req.SlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				Fail(c, httperr.NotFound("SLOT_NOT_FOUND", "slot not found")) // No such slot
				return
			}
			FailInternal(c, "BOOKING_FAILED", err) // Store failure during lookup
			return
		}
		// Optimistic pre-check for a fast, clear error in the common case
		var taken int64
		if err := db.Model(&domain.Booking{}).Where("slot_id = ?", slot.ID).Count(&taken).Error; err != nil {
			FailInternal(c, "BOOKING_FAILED", err) // Store failure during pre-check
			return
		}
		if taken > 0 {
			Fail(c, httperr.Conflict("SLOT_TAKEN", "slot taken")) // Slot already booked
			return
		}
		// Insert the booking; the unique index on slot_id decides races
		booking := domain.Booking{UserID: userID, SlotID: slot.ID}
		if err := db.Create(&booking).Error; err != nil {
			// A concurrent request won the slot between pre-check and insert
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				Fail(c, httperr.Conflict("SLOT_TAKEN", "slot taken"))
				return
			}
			FailInternal(c, "BOOKING_FAILED", err) // Any other store failure
			return
		}
		// Load the slot and user associations for the response
		if err := db.Preload("Slot").Preload("User").First(&booking, booking.ID).Error; err != nil {
			FailInternal(c, "BOOKING_FAILED", err)
			return
		}
		// Log the successful booking with context
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,        // Booking user
			"slot_id":    slot.ID,       // Booked slot
			"booking_id": booking.ID,    // Created booking
			"start_at":   slot.StartAt,  // Slot start
		}).Info("Slot booked")
		c.JSON(http.StatusCreated, toResponse(booking)) // Return the created booking
	}
}

// MyBookingsHandler returns the authenticated user's bookings, newest first
func MyBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(middleware.CtxUserID) // Authenticated user ID
		var bookings []domain.Booking             // Slice to hold bookings
		// Fetch the user's bookings with slot and user joined
		if err := db.Preload("Slot").Preload("User").
			Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&bookings).Error; err != nil {
			FailInternal(c, "FETCH_BOOKINGS_FAILED", err) // If fetching fails, return error
			return
		}
		resp := make([]BookingResponse, len(bookings)) // Map to response shape
		for i, b := range bookings {
			resp[i] = toResponse(b)
		}
		c.JSON(http.StatusOK, resp) // Return the bookings
	}
}

// AllBookingsHandler returns every booking, newest first (admin only)
func AllBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []domain.Booking // Slice to hold bookings
		// Fetch all bookings with slot and user joined
		if err := db.Preload("Slot").Preload("User").
			Order("created_at desc").
			Find(&bookings).Error; err != nil {
			FailInternal(c, "FETCH_ALL_BOOKINGS_FAILED", err) // If fetching fails, return error
			return
		}
		resp := make([]BookingResponse, len(bookings)) // Map to response shape
		for i, b := range bookings {
			resp[i] = toResponse(b)
		}
		c.JSON(http.StatusOK, resp) // Return the bookings
	}
}
