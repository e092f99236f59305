package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"symposiumadmin/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) GetForReview(ctx context.Context, userID, eventID string) (*domain.ReviewRegistration, error) {
	query := `
		SELECT er.id, er.user_id, er.event_id, er.fallback_event_id, er.status,
		       er.attendance_status, er.created_at, u.name, u.email
		FROM event_registrations er
		JOIN users u ON u.id = er.user_id
		WHERE er.user_id = $1 AND er.event_id = $2
	`
	reg := &domain.ReviewRegistration{}
	err := r.DB.QueryRowContext(ctx, query, userID, eventID).Scan(
		&reg.ID, &reg.UserID, &reg.EventID, &reg.FallbackEventID, &reg.Status,
		&reg.AttendanceStatus, &reg.CreatedAt, &reg.UserName, &reg.UserEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) Approve(ctx context.Context, userID, eventID string) error {
	query := `
		UPDATE event_registrations
		SET status = $3
		WHERE user_id = $1 AND event_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, userID, eventID, domain.RegistrationApproved)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RejectWithFallback runs the whole rejection as one transaction: mark the
// original registration REJECTED and enroll the user in the fallback event.
// A registration that is already REJECTED, or an existing enrollment for the
// fallback event, aborts the transaction with ErrConflict so a repeated
// rejection can never produce a duplicate enrollment.
func (r *registrationRepository) RejectWithFallback(ctx context.Context, userID, eventID, fallbackEventID, attendanceStatus string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE event_registrations
		SET status = $3
		WHERE user_id = $1 AND event_id = $2 AND status <> $3
	`, userID, eventID, domain.RegistrationRejected)
	if err != nil {
		return fmt.Errorf("mark rejected: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Existence was established by the caller's load, so zero rows
		// means the registration is already rejected.
		return domain.ErrConflict
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM event_registrations
			WHERE user_id = $1 AND event_id = $2
		)
	`, userID, fallbackEventID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check fallback enrollment: %w", err)
	}
	if exists {
		return domain.ErrConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO event_registrations (user_id, event_id, status, attendance_status)
		VALUES ($1, $2, $3, $4)
	`, userID, fallbackEventID, domain.RegistrationConfirmed, attendanceStatus)
	if err != nil {
		return fmt.Errorf("create fallback enrollment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *registrationRepository) SetAttendance(ctx context.Context, userID, eventID, status string) error {
	query := `
		UPDATE event_registrations
		SET attendance_status = $3
		WHERE user_id = $1 AND event_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, userID, eventID, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.EventRegistration, error) {
	query := `
		SELECT id, user_id, event_id, fallback_event_id, status, attendance_status, created_at
		FROM event_registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.EventRegistration
	for rows.Next() {
		reg := &domain.EventRegistration{}
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.FallbackEventID,
			&reg.Status, &reg.AttendanceStatus, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.EventRegistration{}
	}
	return regs, nil
}
