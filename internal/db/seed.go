package db

import (
	"errors" // For error matching

	"booking_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// SeedAdmin ensures an admin user with the configured email exists. It only
// creates the account when no user has that email, so restarts are no-ops.
func SeedAdmin(db *gorm.DB, email, password string) error {
	// Nothing to seed without configured credentials
	if email == "" || password == "" {
		logrus.Warn("admin seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}
	var existing domain.User // Look up any user with the admin email
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil // Admin already present, nothing to do
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err // Unexpected lookup failure
	}
	// Hash the configured password, never store the plaintext
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Name:     "Admin",          // Seeded display name
		Email:    email,            // Configured admin email
		Password: string(hash),     // Hashed password
		Role:     domain.RoleAdmin, // The only path that creates an admin
	}
	// Create the admin account
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("email", email).Info("Admin user seeded") // Log seeding
	return nil
}
