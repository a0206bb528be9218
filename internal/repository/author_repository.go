package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

const authorColumns = `a.id, a.name, a.email, a.password_hash, a.bio, a.profile_image_url,
	r.name, a.created_at,
	(SELECT COUNT(*) FROM posts p WHERE p.author_id = a.id AND p.status = 'PUBLISHED')`

// PostgresAuthorRepository implements AuthorRepository using PostgreSQL.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthorRepository creates a new PostgresAuthorRepository.
func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

// GetByID retrieves an author by ID.
func (r *PostgresAuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	return r.getOne(ctx, "a.id = $1", id)
}

// GetByEmail retrieves an author by email, including the password hash.
func (r *PostgresAuthorRepository) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	return r.getOne(ctx, "lower(a.email) = lower($1)", email)
}

func (r *PostgresAuthorRepository) getOne(ctx context.Context, cond string, arg any) (*domain.Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM authors a JOIN roles r ON r.id = a.role_id WHERE %s`, authorColumns, cond)

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	author, err := pgx.CollectExactlyOneRow(rows, scanAuthor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &author, nil
}

// List returns every author ordered by name.
func (r *PostgresAuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	return r.list(ctx, `SELECT `+authorColumns+` FROM authors a JOIN roles r ON r.id = a.role_id ORDER BY a.name, a.id`)
}

// ListWithPublishedPosts returns the authors that have at least one
// published post, ordered by name.
func (r *PostgresAuthorRepository) ListWithPublishedPosts(ctx context.Context) ([]domain.Author, error) {
	return r.list(ctx, `SELECT `+authorColumns+` FROM authors a JOIN roles r ON r.id = a.role_id
		WHERE EXISTS (SELECT 1 FROM posts p WHERE p.author_id = a.id AND p.status = 'PUBLISHED')
		ORDER BY a.name, a.id`)
}

func (r *PostgresAuthorRepository) list(ctx context.Context, query string) ([]domain.Author, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, scanAuthor)
	if err != nil {
		return nil, fmt.Errorf("failed to scan authors: %w", err)
	}
	return authors, nil
}

// Create inserts an author with the given role. A missing role row is
// reported as domain.ErrNotFound and a duplicate email as domain.ErrConflict.
func (r *PostgresAuthorRepository) Create(ctx context.Context, in domain.AuthorInput, passwordHash string) (*domain.Author, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO authors (name, email, password_hash, bio, role_id)
		SELECT $1, $2, $3, NULLIF($4, ''), r.id FROM roles r WHERE r.name = $5
		RETURNING id`,
		in.Name, strings.ToLower(in.Email), passwordHash, in.Bio, string(in.Role),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("role %s: %w", in.Role, domain.ErrNotFound)
		}
		return nil, mapWriteError("insert author", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes an author together with their posts.
func (r *PostgresAuthorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// EnsureRoles inserts the ADMIN and AUTHOR roles if they are missing.
func (r *PostgresAuthorRepository) EnsureRoles(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO roles (name, description) VALUES
			('ADMIN', 'Administrator with full access'),
			('AUTHOR', 'Writes and manages own posts')
		ON CONFLICT (name) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("failed to ensure roles: %w", err)
	}
	return nil
}

// Count returns the number of authors.
func (r *PostgresAuthorRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return n, nil
}

func scanAuthor(row pgx.CollectableRow) (domain.Author, error) {
	var a domain.Author
	var role string
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Bio, &a.ProfileImageURL,
		&role, &a.CreatedAt, &a.PublishedPosts)
	if err != nil {
		return a, err
	}
	// Unknown role names are kept verbatim; viewer validation rejects them.
	if parsed, perr := domain.ParseRole(role); perr == nil {
		a.Role = parsed
	} else {
		a.Role = domain.Role(role)
	}
	return a, nil
}
