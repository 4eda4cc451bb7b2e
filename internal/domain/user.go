package domain

// User roles
const (
	RoleAdmin   = "admin"   // Administrator role
	RolePatient = "patient" // Default role assigned at registration
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name     string `gorm:"not null" json:"name"`        // Display name
	Email    string `gorm:"unique;not null" json:"email"` // Unique email, compared exactly as stored
	Password string `gorm:"not null" json:"-"`           // Bcrypt hash, never serialized
	Role     string `gorm:"default:patient" json:"role"` // Role: admin or patient
}

// PublicUser is the reduced projection embedded in booking responses
type PublicUser struct {
	ID    uint   `json:"id"`    // User ID
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Email address
}

// Public returns the reduced projection of the user
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
