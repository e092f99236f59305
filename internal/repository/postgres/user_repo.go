package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"symposiumadmin/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, unique_code, name, email, mobile, college, year, food_preference, COALESCE(checked_in, FALSE), check_in_time, created_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.UniqueCode, &u.Name, &u.Email, &u.Mobile, &u.College,
		&u.Year, &u.FoodPreference, &u.CheckedIn, &u.CheckInTime, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByUniqueCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE unique_code = $1
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, code))
}

func (r *userRepository) SetCheckedIn(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE users
		SET checked_in = TRUE, check_in_time = $2
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, id, at)
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

func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	q := `
		SELECT ` + userColumns + `
		FROM users
		WHERE name ILIKE $1 OR email ILIKE $1 OR unique_code ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.UniqueCode, &u.Name, &u.Email, &u.Mobile, &u.College,
			&u.Year, &u.FoodPreference, &u.CheckedIn, &u.CheckInTime, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}
