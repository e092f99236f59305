package domain

import (
	"context"
	"time"
)

// Registration status values.
const (
	RegistrationConfirmed = "CONFIRMED"
	RegistrationApproved  = "APPROVED"
	RegistrationRejected  = "REJECTED"
)

// Attendance status values.
const (
	AttendancePending     = "PENDING"
	AttendancePresent     = "PRESENT"
	AttendanceAbsent      = "ABSENT"
	AttendanceNotRequired = "NOT_REQUIRED"
)

// ValidAttendanceUpdate reports whether s is a status an admin may set when
// marking attendance.
func ValidAttendanceUpdate(s string) bool {
	return s == AttendancePending || s == AttendancePresent || s == AttendanceAbsent
}

// EventRegistration ties a user to one event of the catalog.
// swagger:model EventRegistration
type EventRegistration struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	EventID          string    `json:"event_id"`
	FallbackEventID  *string   `json:"fallback_event_id"`
	Status           string    `json:"status"`
	AttendanceStatus string    `json:"attendance_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// ReviewRegistration is an abstract-track registration loaded for review,
// joined with the registrant's contact fields for notification.
type ReviewRegistration struct {
	EventRegistration
	UserName  string
	UserEmail string
}

// ReviewAction is an abstract review decision.
type ReviewAction string

// Review actions.
const (
	ReviewApproved ReviewAction = "APPROVED"
	ReviewRejected ReviewAction = "REJECTED"
)

// ReviewResult reports the state transition applied by an abstract review.
type ReviewResult struct {
	Action          ReviewAction `json:"action"`
	EventID         string       `json:"eventId"`
	FallbackEventID string       `json:"fallbackEventId,omitempty"`
	UserName        string       `json:"-"`
	UserEmail       string       `json:"-"`
}

// RegistrationRepository defines storage operations for event registrations.
type RegistrationRepository interface {
	// GetForReview loads the registration for (userID, eventID) joined with
	// the registrant's name and email. Returns ErrNotFound if absent.
	GetForReview(ctx context.Context, userID, eventID string) (*ReviewRegistration, error)
	// Approve sets the registration status to APPROVED. Idempotent.
	Approve(ctx context.Context, userID, eventID string) error
	// RejectWithFallback atomically marks the registration REJECTED and
	// enrolls the user in the fallback event with the given attendance
	// status. Returns ErrConflict when a fallback enrollment already exists.
	RejectWithFallback(ctx context.Context, userID, eventID, fallbackEventID, attendanceStatus string) error
	// SetAttendance updates attendance_status for (userID, eventID).
	// Returns ErrNotFound when no registration exists.
	SetAttendance(ctx context.Context, userID, eventID, status string) error
	ListByUserID(ctx context.Context, userID string) ([]*EventRegistration, error)
}

// ReviewService orchestrates the abstract review state transition.
type ReviewService interface {
	Review(ctx context.Context, userID, eventID string, action ReviewAction) (*ReviewResult, error)
}

// AdminService covers the venue-side admin operations: check-in, marking
// per-event attendance, and payment verification.
type AdminService interface {
	// CheckIn marks the registrant with the given unique code as arrived.
	// Returns ErrConflict if already checked in.
	CheckIn(ctx context.Context, uniqueCode string) (*User, error)
	// SetAttendance marks attendance for a registration. Fails with
	// ErrNotCheckedIn unless the user has checked in at the venue.
	SetAttendance(ctx context.Context, userID, eventID, status string) (*EventRegistration, error)
	// SetPaymentStatus updates the user's payment verification status.
	SetPaymentStatus(ctx context.Context, userID, status string) (*Payment, error)
}
