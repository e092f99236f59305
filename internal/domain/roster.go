package domain

import "context"

// RosterFilters are the optional filters for the admin registration list.
// Empty fields are ignored.
type RosterFilters struct {
	Event            string
	AbstractStatus   string
	PaymentStatus    string
	CheckedIn        string // "true" or "false"; "false" also matches NULL
	AttendanceStatus string
}

// RosterRegistration is one registration row embedded in a roster entry.
type RosterRegistration struct {
	EventID          string  `json:"event_id"`
	EventTitle       string  `json:"event_title"`
	FallbackEventID  *string `json:"fallback_event_id"`
	Status           string  `json:"status"`
	AttendanceStatus string  `json:"attendance_status"`
}

// RosterEntry aggregates one registrant with all their registrations and
// their payment (nil when no payment row exists).
type RosterEntry struct {
	User          *User                 `json:"user"`
	Registrations []*RosterRegistration `json:"registrations"`
	Payment       *Payment              `json:"payment"`
}

// RosterRepository builds the filtered, paginated admin registration list.
// Count and List apply identical predicates.
type RosterRepository interface {
	Count(ctx context.Context, f RosterFilters) (int, error)
	List(ctx context.Context, f RosterFilters, p PaginationParams) ([]*RosterEntry, error)
}

// EventStat is the registration count for one event.
type EventStat struct {
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	Count      int    `json:"count"`
}

// Stats holds the aggregate counters for the admin dashboard.
// swagger:model Stats
type Stats struct {
	TotalUsers     int            `json:"total_users"`
	CheckedIn      int            `json:"checked_in"`
	Payments       map[string]int `json:"payments"`
	AbstractReview map[string]int `json:"abstract_review"`
	EventCounts    []*EventStat   `json:"event_counts"`
}

// StatsRepository collects the aggregate counters.
type StatsRepository interface {
	Collect(ctx context.Context) (*Stats, error)
}

// SearchResult is the detailed lookup result for an exact unique-code search.
type SearchResult struct {
	User          *User                `json:"user"`
	Registrations []*EventRegistration `json:"events"`
	Payment       *Payment             `json:"payment"`
}

// RosterService serves the admin registration list, search, and stats.
type RosterService interface {
	ListRegistrations(ctx context.Context, f RosterFilters, p PaginationParams) ([]*RosterEntry, int, error)
	// SearchByQuery matches registrants by name, email, or unique code.
	SearchByQuery(ctx context.Context, query string) ([]*User, error)
	// LookupByCode returns the registrant with the exact unique code along
	// with their registrations and payment.
	LookupByCode(ctx context.Context, code string) (*SearchResult, error)
	Stats(ctx context.Context) (*Stats, error)
}
