package domain

import (
	"context"
	"time"
)

// User represents a symposium registrant.
// swagger:model User
type User struct {
	ID             string     `json:"id"`
	UniqueCode     string     `json:"unique_code"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Mobile         string     `json:"mobile"`
	College        string     `json:"college"`
	Year           string     `json:"year"`
	FoodPreference string     `json:"food_preference"`
	CheckedIn      bool       `json:"checked_in"`
	CheckInTime    *time.Time `json:"check_in_time"`
	CreatedAt      time.Time  `json:"created_at"`
}

// UserRepository defines the interface for registrant storage.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUniqueCode(ctx context.Context, code string) (*User, error)
	// SetCheckedIn marks the user as arrived at the venue and records the time.
	SetCheckedIn(ctx context.Context, id string, at time.Time) error
	// Search matches name, email, or unique code case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*User, error)
}

// SessionIssuer issues a signed admin session credential.
type SessionIssuer interface {
	Issue(role string) (string, error)
}

// SessionVerifier verifies a session credential and returns its role claim.
type SessionVerifier interface {
	Verify(credential string) (role string, err error)
}

// PasskeyVerifier checks the shared admin passkey presented at login.
type PasskeyVerifier interface {
	Verify(passkey string) error
}

// AuthService handles admin login.
type AuthService interface {
	// Login verifies the passkey and returns a session credential.
	Login(ctx context.Context, passkey string) (string, error)
}
