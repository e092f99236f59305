package services

import (
	"context"
	"errors"
	"testing"

	"symposiumadmin/internal/domain"
)

type mockRosterRepository struct {
	total    int
	countErr error

	entries []*domain.RosterEntry
	listErr error

	gotFilters domain.RosterFilters
	gotPage    domain.PaginationParams
}

func (m *mockRosterRepository) Count(ctx context.Context, f domain.RosterFilters) (int, error) {
	m.gotFilters = f
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockRosterRepository) List(ctx context.Context, f domain.RosterFilters, p domain.PaginationParams) ([]*domain.RosterEntry, error) {
	m.gotPage = p
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

type mockStatsRepository struct {
	stats *domain.Stats
	err   error
}

func (m *mockStatsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func newRosterService(roster *mockRosterRepository, users *mockUserRepository, regs *mockRegistrationRepository, payments *mockPaymentRepository, stats *mockStatsRepository) domain.RosterService {
	if roster == nil {
		roster = &mockRosterRepository{}
	}
	if users == nil {
		users = &mockUserRepository{}
	}
	if regs == nil {
		regs = &mockRegistrationRepository{}
	}
	if payments == nil {
		payments = &mockPaymentRepository{}
	}
	if stats == nil {
		stats = &mockStatsRepository{}
	}
	return NewRosterService(roster, users, regs, payments, stats)
}

func TestRosterService_ListRegistrations(t *testing.T) {
	ctx := context.Background()

	roster := &mockRosterRepository{
		total: 45,
		entries: []*domain.RosterEntry{
			{
				User: &domain.User{ID: "user-1", Name: "Asha"},
				Registrations: []*domain.RosterRegistration{
					{EventID: "tech-quiz", Status: domain.RegistrationConfirmed},
					{EventID: "mystery-event", Status: domain.RegistrationConfirmed},
				},
			},
		},
	}
	svc := newRosterService(roster, nil, nil, nil, nil)

	filters := domain.RosterFilters{Event: "tech-quiz"}
	page := domain.PaginationParams{Page: 2, Limit: 20}
	entries, total, err := svc.ListRegistrations(ctx, filters, page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 45 {
		t.Fatalf("expected total 45, got %d", total)
	}
	if roster.gotFilters != filters || roster.gotPage != page {
		t.Fatalf("filters/pagination not forwarded: %+v %+v", roster.gotFilters, roster.gotPage)
	}
	if got := entries[0].Registrations[0].EventTitle; got != "Tech Quiz" {
		t.Fatalf("catalog title not resolved, got %q", got)
	}
	// Events missing from the catalog keep their raw id as title.
	if got := entries[0].Registrations[1].EventTitle; got != "mystery-event" {
		t.Fatalf("unknown event title mangled, got %q", got)
	}
}

func TestRosterService_SearchByQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query", func(t *testing.T) {
		svc := newRosterService(nil, nil, nil, nil, nil)
		_, err := svc.SearchByQuery(ctx, "  ")
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("trims and caps results", func(t *testing.T) {
		users := &mockUserRepository{searchResults: []*domain.User{{ID: "user-1", Name: "Asha"}}}
		svc := newRosterService(nil, users, nil, nil, nil)

		results, err := svc.SearchByQuery(ctx, "  asha ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users.gotQuery != "asha" {
			t.Fatalf("query not trimmed: %q", users.gotQuery)
		}
		if users.gotLimit != searchResultLimit {
			t.Fatalf("expected limit %d, got %d", searchResultLimit, users.gotLimit)
		}
		if len(results) != 1 {
			t.Fatalf("expected one result, got %d", len(results))
		}
	})
}

func TestRosterService_LookupByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		users := &mockUserRepository{getErr: domain.ErrNotFound}
		svc := newRosterService(nil, users, nil, nil, nil)
		_, err := svc.LookupByCode(ctx, "SYM-9999")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing payment is not an error", func(t *testing.T) {
		users := &mockUserRepository{user: &domain.User{ID: "user-1", UniqueCode: "SYM-0042"}}
		payments := &mockPaymentRepository{err: domain.ErrNotFound}
		svc := newRosterService(nil, users, nil, payments, nil)

		result, err := svc.LookupByCode(ctx, "SYM-0042")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.User.ID != "user-1" {
			t.Fatalf("unexpected user: %+v", result.User)
		}
		if result.Payment != nil {
			t.Fatalf("expected nil payment, got %+v", result.Payment)
		}
	})
}

func TestRosterService_Stats(t *testing.T) {
	stats := &mockStatsRepository{stats: &domain.Stats{TotalUsers: 120, CheckedIn: 80}}
	svc := newRosterService(nil, nil, nil, nil, stats)

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalUsers != 120 || got.CheckedIn != 80 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}
