package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

const commentSelect = `
	SELECT cm.id, cm.post_id, p.title, cm.author_name, cm.author_email,
		cm.content, cm.status, cm.created_at
	FROM comments cm
	JOIN posts p ON p.id = cm.post_id`

// Create stores a new comment in PENDING state.
func (r *PostgresCommentRepository) Create(ctx context.Context, postID int64, in domain.CommentInput) (*domain.Comment, error) {
	c := domain.Comment{
		PostID:     postID,
		AuthorName: in.AuthorName,
		Content:    in.Content,
		Status:     domain.CommentStatusPending,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, author_name, author_email, content, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id, author_email, created_at`,
		postID, in.AuthorName, in.AuthorEmail, in.Content, string(domain.CommentStatusPending),
	).Scan(&c.ID, &c.AuthorEmail, &c.CreatedAt)
	if err != nil {
		return nil, mapWriteError("insert comment", err)
	}
	return &c, nil
}

// ListApprovedForPost returns the approved comments of a post, newest first.
func (r *PostgresCommentRepository) ListApprovedForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+`
		WHERE cm.post_id = $1 AND cm.status = $2
		ORDER BY cm.created_at DESC, cm.id DESC`,
		postID, string(domain.CommentStatusApproved))
}

// List returns every comment, newest first.
func (r *PostgresCommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+` ORDER BY cm.created_at DESC, cm.id DESC`)
}

func (r *PostgresCommentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		var c domain.Comment
		err := row.Scan(&c.ID, &c.PostID, &c.PostTitle, &c.AuthorName, &c.AuthorEmail,
			&c.Content, &c.Status, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan comments: %w", err)
	}
	return comments, nil
}

// UpdateStatus sets the moderation status of a comment.
func (r *PostgresCommentRepository) UpdateStatus(ctx context.Context, id int64, status domain.CommentStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE comments SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByStatus returns the number of comments in status.
func (r *PostgresCommentRepository) CountByStatus(ctx context.Context, status domain.CommentStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return n, nil
}
