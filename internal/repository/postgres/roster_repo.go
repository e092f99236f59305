package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"symposiumadmin/internal/domain"
)

type rosterRepository struct {
	DB *sql.DB
}

func NewRosterRepository(db *sql.DB) domain.RosterRepository {
	return &rosterRepository{DB: db}
}

// condBuilder accumulates WHERE predicates and their parameters in parallel,
// rendering positional placeholders only from the parameter list. Values are
// never interpolated into the query text.
type condBuilder struct {
	preds []string
	args  []any
}

// add appends a predicate whose %s verbs are replaced with the positional
// placeholders for vals.
func (b *condBuilder) add(pred string, vals ...any) {
	placeholders := make([]any, len(vals))
	for i := range vals {
		placeholders[i] = fmt.Sprintf("$%d", len(b.args)+i+1)
	}
	b.preds = append(b.preds, fmt.Sprintf(pred, placeholders...))
	b.args = append(b.args, vals...)
}

// next returns the placeholder for one more appended argument.
func (b *condBuilder) next(val any) string {
	b.args = append(b.args, val)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *condBuilder) where() string {
	if len(b.preds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.preds, " AND ")
}

// rosterConds translates the optional filters into predicates over users u.
// Count and List share this so both queries always agree.
func rosterConds(f domain.RosterFilters) *condBuilder {
	b := &condBuilder{}
	if f.Event != "" {
		b.add(`EXISTS (SELECT 1 FROM event_registrations er WHERE er.user_id = u.id AND er.event_id = %s)`, f.Event)
	}
	if f.AbstractStatus != "" {
		b.add(`EXISTS (SELECT 1 FROM event_registrations er WHERE er.user_id = u.id AND er.status = %s AND er.event_id = ANY(%s))`,
			f.AbstractStatus, pq.Array(domain.AbstractEventIDs()))
	}
	if f.PaymentStatus != "" {
		b.add(`EXISTS (SELECT 1 FROM payments p WHERE p.user_id = u.id AND p.status = %s)`, f.PaymentStatus)
	}
	switch f.CheckedIn {
	case "true":
		b.preds = append(b.preds, `u.checked_in = TRUE`)
	case "false":
		// NULL counts as not checked in.
		b.preds = append(b.preds, `u.checked_in IS DISTINCT FROM TRUE`)
	}
	if f.AttendanceStatus != "" {
		b.add(`EXISTS (SELECT 1 FROM event_registrations er WHERE er.user_id = u.id AND er.attendance_status = %s)`, f.AttendanceStatus)
	}
	return b
}

func (r *rosterRepository) Count(ctx context.Context, f domain.RosterFilters) (int, error) {
	b := rosterConds(f)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users u %s`, b.where())
	var total int
	if err := r.DB.QueryRowContext(ctx, query, b.args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *rosterRepository) List(ctx context.Context, f domain.RosterFilters, p domain.PaginationParams) ([]*domain.RosterEntry, error) {
	b := rosterConds(f)
	where := b.where()
	limit := b.next(p.Limit)
	offset := b.next(p.Offset())

	// One row per user: registrations as a json array, payment as a json
	// object or NULL.
	query := fmt.Sprintf(`
		SELECT u.id, u.unique_code, u.name, u.email, u.mobile, u.college, u.year,
		       u.food_preference, COALESCE(u.checked_in, FALSE), u.check_in_time, u.created_at,
		       COALESCE((
		           SELECT json_agg(json_build_object(
		               'event_id', er.event_id,
		               'fallback_event_id', er.fallback_event_id,
		               'status', er.status,
		               'attendance_status', er.attendance_status
		           ) ORDER BY er.created_at)
		           FROM event_registrations er WHERE er.user_id = u.id
		       ), '[]'),
		       (SELECT row_to_json(p) FROM payments p WHERE p.user_id = u.id LIMIT 1)
		FROM users u
		%s
		ORDER BY u.created_at DESC
		LIMIT %s OFFSET %s
	`, where, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.RosterEntry
	for rows.Next() {
		u := &domain.User{}
		var regsJSON []byte
		var paymentJSON []byte
		if err := rows.Scan(&u.ID, &u.UniqueCode, &u.Name, &u.Email, &u.Mobile, &u.College,
			&u.Year, &u.FoodPreference, &u.CheckedIn, &u.CheckInTime, &u.CreatedAt,
			&regsJSON, &paymentJSON); err != nil {
			return nil, err
		}
		entry := &domain.RosterEntry{User: u}
		if err := json.Unmarshal(regsJSON, &entry.Registrations); err != nil {
			return nil, fmt.Errorf("decode registrations for user %s: %w", u.ID, err)
		}
		if len(paymentJSON) > 0 {
			entry.Payment = &domain.Payment{}
			if err := json.Unmarshal(paymentJSON, entry.Payment); err != nil {
				return nil, fmt.Errorf("decode payment for user %s: %w", u.ID, err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.RosterEntry{}
	}
	return entries, nil
}
