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

// OrderRepository reads orders from the host platform database.
// The notifier never writes to this table.
type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID returns the order or nil when it does not exist.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("find_by_id", "orders", time.Since(start)) }()

	query := `
        SELECT id, number, status, total, billing_first_name, billing_last_name, billing_email, created_at
        FROM orders
        WHERE id = $1
    `
	var o model.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.Number,
		&o.Status,
		&o.Total,
		&o.BillingFirstName,
		&o.BillingLastName,
		&o.BillingEmail,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByStatuses returns every order in one of the given statuses, newest
// first. No date filter: the digest looks at all time.
func (r *OrderRepository) ListByStatuses(ctx context.Context, statuses []string) ([]model.Order, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("list_by_statuses", "orders", time.Since(start)) }()

	query := `
        SELECT id, number, status, total, billing_first_name, billing_last_name, billing_email, created_at
        FROM orders
        WHERE status = ANY($1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID,
			&o.Number,
			&o.Status,
			&o.Total,
			&o.BillingFirstName,
			&o.BillingLastName,
			&o.BillingEmail,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
