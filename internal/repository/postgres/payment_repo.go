package postgres

import (
	"context"
	"database/sql"
	"errors"

	"symposiumadmin/internal/domain"
)

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &paymentRepository{DB: db}
}

func (r *paymentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Payment, error) {
	query := `
		SELECT id, user_id, amount, screenshot_url, transaction_id, status, created_at
		FROM payments
		WHERE user_id = $1
	`
	p := &domain.Payment{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Amount, &p.ScreenshotURL, &p.TransactionID, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) SetStatusByUserID(ctx context.Context, userID, status string) (*domain.Payment, error) {
	query := `
		UPDATE payments
		SET status = $2
		WHERE user_id = $1
		RETURNING id, user_id, amount, screenshot_url, transaction_id, status, created_at
	`
	p := &domain.Payment{}
	err := r.DB.QueryRowContext(ctx, query, userID, status).Scan(
		&p.ID, &p.UserID, &p.Amount, &p.ScreenshotURL, &p.TransactionID, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
