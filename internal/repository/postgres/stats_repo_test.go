package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"symposiumadmin/internal/domain"
)

func TestStatsRepository_Collect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "checked_in"}).AddRow(120, 80))
	mock.ExpectQuery(`FROM payments GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(domain.PaymentVerified, 90).
			AddRow(domain.PaymentPending, 25))
	mock.ExpectQuery(`FROM event_registrations\s+WHERE event_id = ANY`).
		WithArgs(pq.Array(domain.AbstractEventIDs())).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(domain.RegistrationConfirmed, 10).
			AddRow(domain.RegistrationRejected, 4))
	mock.ExpectQuery(`GROUP BY event_id`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "count"}).
			AddRow("tech-quiz", 60).
			AddRow("mystery-event", 2))

	repo := NewStatsRepository(db)
	stats, err := repo.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, 120, stats.TotalUsers)
	require.Equal(t, 80, stats.CheckedIn)
	require.Equal(t, 90, stats.Payments[domain.PaymentVerified])
	require.Equal(t, 4, stats.AbstractReview[domain.RegistrationRejected])
	require.Len(t, stats.EventCounts, 2)
	require.Equal(t, "Tech Quiz", stats.EventCounts[0].EventTitle)
	// Unknown event ids keep the raw id as title.
	require.Equal(t, "mystery-event", stats.EventCounts[1].EventTitle)
	require.NoError(t, mock.ExpectationsWereMet())
}
