package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

const categorySelect = `
	SELECT c.id, c.name, c.slug, c.description, c.created_at,
		(SELECT COUNT(*) FROM post_categories pc JOIN posts p ON p.id = pc.post_id
		 WHERE pc.category_id = c.id AND p.status = 'PUBLISHED')
	FROM categories c`

// GetBySlug retrieves a category by slug.
func (r *PostgresCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	rows, err := r.pool.Query(ctx, categorySelect+` WHERE c.slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	category, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// List returns every category with its published post count, ordered by name.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, categorySelect+` ORDER BY c.name, c.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

// Create inserts a category.
func (r *PostgresCategoryRepository) Create(ctx context.Context, in domain.TaxonomyInput) (*domain.Category, error) {
	c := domain.Category{Name: in.Name, Slug: in.Slug}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, description, created_at`,
		in.Name, in.Slug, in.Description,
	).Scan(&c.ID, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, mapWriteError("insert category", err)
	}
	return &c, nil
}

// Delete removes a category and its post links.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCategory(row pgx.CollectableRow) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.PostCount)
	return c, err
}

// PostgresTagRepository implements TagRepository using PostgreSQL.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new PostgresTagRepository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

const tagSelect = `
	SELECT t.id, t.name, t.slug, t.created_at,
		(SELECT COUNT(*) FROM post_tags pt JOIN posts p ON p.id = pt.post_id
		 WHERE pt.tag_id = t.id AND p.status = 'PUBLISHED') AS post_count
	FROM tags t`

// GetBySlug retrieves a tag by slug.
func (r *PostgresTagRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	rows, err := r.pool.Query(ctx, tagSelect+` WHERE t.slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	tag, err := pgx.CollectExactlyOneRow(rows, scanTag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

// List returns every tag ordered by name.
func (r *PostgresTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	return r.list(ctx, tagSelect+` ORDER BY t.name, t.id`)
}

// Top returns up to limit tags with the most published posts. Tags without
// published posts are left out.
func (r *PostgresTagRepository) Top(ctx context.Context, limit int) ([]domain.Tag, error) {
	return r.list(ctx, `SELECT * FROM (`+tagSelect+`) ranked
		WHERE post_count > 0
		ORDER BY post_count DESC, name
		LIMIT $1`, limit)
}

func (r *PostgresTagRepository) list(ctx context.Context, query string, args ...any) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	tags, err := pgx.CollectRows(rows, scanTag)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tags: %w", err)
	}
	return tags, nil
}

// Create inserts a tag.
func (r *PostgresTagRepository) Create(ctx context.Context, in domain.TaxonomyInput) (*domain.Tag, error) {
	t := domain.Tag{Name: in.Name, Slug: in.Slug}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tags (name, slug) VALUES ($1, $2)
		RETURNING id, created_at`,
		in.Name, in.Slug,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, mapWriteError("insert tag", err)
	}
	return &t, nil
}

// Delete removes a tag and its post links.
func (r *PostgresTagRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTag(row pgx.CollectableRow) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.PostCount)
	return t, err
}
