package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"symposiumadmin/internal/domain"
)

func TestRosterRepository_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users u`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

		repo := NewRosterRepository(db)
		total, err := repo.Count(ctx, domain.RosterFilters{})
		require.NoError(t, err)
		require.Equal(t, 45, total)
	})

	t.Run("checkedIn false matches null and false", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`u\.checked_in IS DISTINCT FROM TRUE`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		repo := NewRosterRepository(db)
		total, err := repo.Count(ctx, domain.RosterFilters{CheckedIn: "false"})
		require.NoError(t, err)
		require.Equal(t, 12, total)
	})

	t.Run("checkedIn true matches explicit true only", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`u\.checked_in = TRUE`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(33))

		repo := NewRosterRepository(db)
		total, err := repo.Count(ctx, domain.RosterFilters{CheckedIn: "true"})
		require.NoError(t, err)
		require.Equal(t, 33, total)
	})

	t.Run("event and payment filters bind positionally", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users u WHERE`).
			WithArgs("tech-quiz", domain.PaymentVerified).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		repo := NewRosterRepository(db)
		total, err := repo.Count(ctx, domain.RosterFilters{
			Event:         "tech-quiz",
			PaymentStatus: domain.PaymentVerified,
		})
		require.NoError(t, err)
		require.Equal(t, 7, total)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("abstract status restricts to abstract events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`er\.event_id = ANY`).
			WithArgs(domain.RegistrationRejected, pq.Array(domain.AbstractEventIDs())).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		repo := NewRosterRepository(db)
		total, err := repo.Count(ctx, domain.RosterFilters{AbstractStatus: domain.RegistrationRejected})
		require.NoError(t, err)
		require.Equal(t, 3, total)
	})
}

func TestRosterRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates registrations and payment per user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		regsJSON := `[{"event_id":"paper-presentation","fallback_event_id":"project-presentation","status":"REJECTED","attendance_status":"PENDING"},{"event_id":"project-presentation","fallback_event_id":null,"status":"CONFIRMED","attendance_status":"PENDING"}]`
		paymentJSON := `{"id":"pay-1","user_id":"user-1","amount":250,"screenshot_url":"https://bucket/shot.png","transaction_id":null,"status":"VERIFIED","created_at":"2026-02-01T00:00:00Z"}`

		rows := sqlmock.NewRows(append(userTestColumns, "registrations", "payment")).
			AddRow("user-1", "SYM-0042", "Asha", "asha@example.com", "", "", "", "veg",
				true, createdAt, createdAt, []byte(regsJSON), []byte(paymentJSON)).
			AddRow("user-2", "SYM-0043", "Ravi", "ravi@example.com", "", "", "", "",
				false, nil, createdAt, []byte(`[]`), nil)
		mock.ExpectQuery(`FROM users u`).
			WithArgs(20, 0).
			WillReturnRows(rows)

		repo := NewRosterRepository(db)
		entries, err := repo.List(ctx, domain.RosterFilters{}, domain.PaginationParams{Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, entries, 2)

		require.Equal(t, "user-1", entries[0].User.ID)
		require.Len(t, entries[0].Registrations, 2)
		require.Equal(t, "paper-presentation", entries[0].Registrations[0].EventID)
		require.Equal(t, domain.RegistrationRejected, entries[0].Registrations[0].Status)
		require.NotNil(t, entries[0].Payment)
		require.Equal(t, domain.PaymentVerified, entries[0].Payment.Status)

		require.Empty(t, entries[1].Registrations)
		require.Nil(t, entries[1].Payment)
	})

	t.Run("pagination renders limit and offset", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM users u`).
			WithArgs(20, 40).
			WillReturnRows(sqlmock.NewRows(append(userTestColumns, "registrations", "payment")))

		repo := NewRosterRepository(db)
		entries, err := repo.List(ctx, domain.RosterFilters{}, domain.PaginationParams{Page: 3, Limit: 20})
		require.NoError(t, err)
		require.Empty(t, entries)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
