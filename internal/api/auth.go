package api

import (
	"errors"   // For error matching
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions

	"booking_system/internal/domain"  // Importing domain models
	"booking_system/internal/httperr" // Error taxonomy
	"booking_system/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name"`     // Display name
	Email    string `json:"email"`    // Email address
	Password string `json:"password"` // Plaintext password, hashed before storage
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email"`    // Email address
	Password string `json:"password"` // Plaintext password
}

// emailShape matches a basic local@domain.tld shape
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// isValidEmail checks the email against the basic shape
func isValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// isValidPassword checks if the password is at least 8 characters
func isValidPassword(password string) bool {
	return len(password) >= 8
}

// RegisterHandler creates a patient account from name, email and password
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			Fail(c, httperr.Validation("MISSING_FIELDS", "name, email and password are required"))
			return
		}
		// All three fields must be present
		if req.Name == "" || req.Email == "" || req.Password == "" {
			Fail(c, httperr.Validation("MISSING_FIELDS", "name, email and password are required"))
			return
		}
		// Validate email shape
		if !isValidEmail(req.Email) {
			Fail(c, httperr.Validation("INVALID_EMAIL", "email must look like local@domain.tld"))
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			Fail(c, httperr.Validation("WEAK_PASSWORD", "password must be at least 8 characters"))
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			FailInternal(c, "REGISTRATION_FAILED", err) // If hashing fails, return internal server error
			return
		}
		// Registration always creates a patient, never an admin. Email is
		// stored and matched exactly as supplied.
		user := domain.User{Name: req.Name, Email: req.Email, Password: string(hash), Role: domain.RolePatient}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// The unique email column reports duplicates
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				Fail(c, httperr.Conflict("EMAIL_EXISTS", "email already registered"))
				return
			}
			FailInternal(c, "REGISTRATION_FAILED", err) // Any other store failure
			return
		}
		// Return success response with the created user
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a signed bearer token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			// If binding fails or either field is absent, return bad request
			Fail(c, httperr.Validation("MISSING_CREDENTIALS", "email and password are required"))
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			// Unknown email reports the same error as a wrong password
			Fail(c, httperr.Auth("INVALID_CREDENTIALS", "invalid credentials"))
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			Fail(c, httperr.Auth("INVALID_CREDENTIALS", "invalid credentials"))
			return
		}
		// Generate JWT token embedding id, email and role
		token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, jwtSecret)
		if err != nil {
			FailInternal(c, "LOGIN_FAILED", err) // If token generation fails, return internal server error
			return
		}
		// Log the login with context
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,   // User ID
			"role":    user.Role, // User role
		}).Info("User logged in")
		// Return the token, role and user in the response
		c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role, "user": user})
	}
}
