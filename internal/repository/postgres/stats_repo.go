package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"symposiumadmin/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{DB: db}
}

func (r *statsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{
		Payments:       map[string]int{},
		AbstractReview: map[string]int{},
	}

	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE checked_in = TRUE)
		FROM users
	`).Scan(&stats.TotalUsers, &stats.CheckedIn)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM payments GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.Payments[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.DB.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM event_registrations
		WHERE event_id = ANY($1)
		GROUP BY status
	`, pq.Array(domain.AbstractEventIDs()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.AbstractReview[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.DB.QueryContext(ctx, `
		SELECT event_id, COUNT(*) FROM event_registrations
		GROUP BY event_id
		ORDER BY COUNT(*) DESC, event_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		stat := &domain.EventStat{}
		if err := rows.Scan(&stat.EventID, &stat.Count); err != nil {
			return nil, err
		}
		stat.EventTitle = domain.EventTitle(stat.EventID)
		stats.EventCounts = append(stats.EventCounts, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if stats.EventCounts == nil {
		stats.EventCounts = []*domain.EventStat{}
	}

	return stats, nil
}
