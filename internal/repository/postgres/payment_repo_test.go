package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"symposiumadmin/internal/domain"
)

func TestPaymentRepository_SetStatusByUserID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "user_id", "amount", "screenshot_url", "transaction_id", "status", "created_at",
		}).AddRow("pay-1", "user-1", 250.0, "https://bucket/shot.png", nil, domain.PaymentVerified, createdAt)
		mock.ExpectQuery(`UPDATE payments`).
			WithArgs("user-1", domain.PaymentVerified).
			WillReturnRows(rows)

		repo := NewPaymentRepository(db)
		payment, err := repo.SetStatusByUserID(ctx, "user-1", domain.PaymentVerified)
		require.NoError(t, err)
		require.Equal(t, domain.PaymentVerified, payment.Status)
		require.Nil(t, payment.TransactionID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no payment row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE payments`).
			WithArgs("user-1", domain.PaymentRejected).
			WillReturnError(sql.ErrNoRows)

		repo := NewPaymentRepository(db)
		_, err = repo.SetStatusByUserID(ctx, "user-1", domain.PaymentRejected)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
