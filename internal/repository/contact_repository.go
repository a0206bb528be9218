package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

// PostgresContactMessageRepository implements ContactMessageRepository
// using PostgreSQL.
type PostgresContactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContactMessageRepository creates a new PostgresContactMessageRepository.
func NewPostgresContactMessageRepository(pool *pgxpool.Pool) *PostgresContactMessageRepository {
	return &PostgresContactMessageRepository{pool: pool}
}

// Create stores msg and fills in its ID and CreatedAt.
func (r *PostgresContactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, subject, message_body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.MessageBody,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return mapWriteError("insert contact message", err)
	}
	return nil
}

// List returns one page of messages, newest first, and the total count.
func (r *PostgresContactMessageRepository) List(ctx context.Context, offset, limit int) ([]domain.ContactMessage, int, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, subject, message_body, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContactMessage, error) {
		var m domain.ContactMessage
		err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.MessageBody, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan contact messages: %w", err)
	}
	return messages, total, nil
}

// Count returns the number of stored messages.
func (r *PostgresContactMessageRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return n, nil
}
