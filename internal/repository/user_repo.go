package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/metrics"
)

// UserRepository reads platform user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns the user or nil when it does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("find_by_id", "users", time.Since(start)) }()

	query := `
        SELECT id, email, role
        FROM users
        WHERE id = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAdminEmails returns the email of every administrator, empties skipped.
func (r *UserRepository) ListAdminEmails(ctx context.Context) ([]string, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("list_admin_emails", "users", time.Since(start)) }()

	query := `
        SELECT email
        FROM users
        WHERE role = 'administrator'
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		if email != "" {
			emails = append(emails, email)
		}
	}

	return emails, rows.Err()
}
