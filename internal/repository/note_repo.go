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

// NoteRepository reads order notes from the host platform database.
// Older platform versions stored the note body in a legacy column, so
// every read normalizes the two layouts into model.OrderNote here rather
// than leaking the difference into the pipelines.
type NoteRepository struct {
	db *pgxpool.Pool
}

func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

// FindByID returns the note or nil when it does not exist.
func (r *NoteRepository) FindByID(ctx context.Context, id int64) (*model.OrderNote, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("find_by_id", "order_notes", time.Since(start)) }()

	query := `
        SELECT id, order_id, COALESCE(content, comment_content, ''), COALESCE(author, 'System'), is_customer_note, created_at
        FROM order_notes
        WHERE id = $1
    `
	var n model.OrderNote
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID,
		&n.OrderID,
		&n.Content,
		&n.Author,
		&n.IsCustomerNote,
		&n.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByOrderDesc returns every note on the order, newest first, any
// visibility. The digest scans these until its first strict match.
func (r *NoteRepository) ListByOrderDesc(ctx context.Context, orderID int64) ([]model.OrderNote, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("list_by_order", "order_notes", time.Since(start)) }()

	query := `
        SELECT id, order_id, COALESCE(content, comment_content, ''), COALESCE(author, 'System'), is_customer_note, created_at
        FROM order_notes
        WHERE order_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []model.OrderNote{}
	for rows.Next() {
		var n model.OrderNote
		err := rows.Scan(
			&n.ID,
			&n.OrderID,
			&n.Content,
			&n.Author,
			&n.IsCustomerNote,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}
