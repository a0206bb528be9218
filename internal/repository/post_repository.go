package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
)

const postSummaryColumns = `p.id, p.title, p.slug, p.short_description, p.thumbnail_url,
	p.status, p.author_id, a.name, p.created_at, p.updated_at`

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// FetchPage returns one page of posts matching q and the total number of
// matches. Both reads share a read-only snapshot so the count and the page
// agree.
func (r *PostgresPostRepository) FetchPage(ctx context.Context, q content.QueryDescriptor, offset, limit int) ([]domain.Post, int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	args := &sqlArgs{}
	where := listingWhere(q, args)

	var total int
	countSQL := "SELECT COUNT(*) FROM posts p " + where
	if err := tx.QueryRow(ctx, countSQL, args.values...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}
	if total == 0 || offset < 0 || offset >= total {
		return []domain.Post{}, total, nil
	}

	pageSQL := fmt.Sprintf(`SELECT %s FROM posts p JOIN authors a ON a.id = p.author_id %s %s LIMIT %s OFFSET %s`,
		postSummaryColumns, where, listingOrder(q.Order), args.add(limit), args.add(offset))

	rows, err := tx.Query(ctx, pageSQL, args.values...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	posts, err := pgx.CollectRows(rows, scanPostSummary)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan posts: %w", err)
	}

	if err := attachTaxonomy(ctx, tx, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetByID retrieves a post with its content and taxonomy.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.getOne(ctx, "p.id = $1", id)
}

// GetBySlug retrieves a post with its content and taxonomy.
func (r *PostgresPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.getOne(ctx, "p.slug = $1", slug)
}

func (r *PostgresPostRepository) getOne(ctx context.Context, cond string, arg any) (*domain.Post, error) {
	query := fmt.Sprintf(`SELECT %s, p.content FROM posts p JOIN authors a ON a.id = p.author_id WHERE %s`,
		postSummaryColumns, cond)

	var post domain.Post
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&post.ID, &post.Title, &post.Slug, &post.ShortDescription, &post.ThumbnailURL,
		&post.Status, &post.AuthorID, &post.AuthorName, &post.CreatedAt, &post.UpdatedAt,
		&post.Content,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	posts := []domain.Post{post}
	if err := attachTaxonomy(ctx, r.pool, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// Create inserts a post and its category and tag links in one transaction.
func (r *PostgresPostRepository) Create(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO posts (title, slug, short_description, content, thumbnail_url, status, author_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING id`,
		in.Title, in.Slug, in.ShortDescription, in.Content, in.ThumbnailURL, string(in.Status), in.AuthorID,
	).Scan(&id)
	if err != nil {
		return nil, mapWriteError("insert post", err)
	}

	if err := replaceLinks(ctx, tx, id, in.CategoryIDs, in.TagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit post: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update overwrites a post's writable fields and replaces its links. It
// returns (nil, nil) when the post does not exist. The author is not changed.
func (r *PostgresPostRepository) Update(ctx context.Context, id int64, in domain.PostInput) (*domain.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, short_description = $4, content = $5,
		    thumbnail_url = NULLIF($6, ''), status = $7, updated_at = now()
		WHERE id = $1`,
		id, in.Title, in.Slug, in.ShortDescription, in.Content, in.ThumbnailURL, string(in.Status),
	)
	if err != nil {
		return nil, mapWriteError("update post", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM post_categories WHERE post_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear categories: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := replaceLinks(ctx, tx, id, in.CategoryIDs, in.TagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit post: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a post. Links and comments go with it through ON DELETE
// CASCADE.
func (r *PostgresPostRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByStatus returns the number of posts per status. Statuses without
// posts are reported as zero.
func (r *PostgresPostRepository) CountByStatus(ctx context.Context) (map[domain.PostStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM posts GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.PostStatus]int, len(domain.ValidPostStatuses))
	for _, s := range domain.ValidPostStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var status domain.PostStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan post count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func replaceLinks(ctx context.Context, tx pgx.Tx, postID int64, categoryIDs, tagIDs []int64) error {
	if len(categoryIDs) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO post_categories (post_id, category_id)
			SELECT $1, unnest($2::bigint[])
			ON CONFLICT DO NOTHING`, postID, categoryIDs)
		if err != nil {
			return mapWriteError("link categories", err)
		}
	}
	if len(tagIDs) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO post_tags (post_id, tag_id)
			SELECT $1, unnest($2::bigint[])
			ON CONFLICT DO NOTHING`, postID, tagIDs)
		if err != nil {
			return mapWriteError("link tags", err)
		}
	}
	return nil
}

// attachTaxonomy loads the categories and tags of posts with one query each.
func attachTaxonomy(ctx context.Context, q querier, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	index := make(map[int64]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = i
		posts[i].Categories = []domain.Category{}
		posts[i].Tags = []domain.Tag{}
	}

	rows, err := q.Query(ctx, `
		SELECT pc.post_id, c.id, c.name, c.slug, c.description, c.created_at
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	for rows.Next() {
		var postID int64
		var c domain.Category
		if err := rows.Scan(&postID, &c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan category: %w", err)
		}
		i := index[postID]
		posts[i].Categories = append(posts[i].Categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	rows, err = q.Query(ctx, `
		SELECT pt.post_id, t.id, t.name, t.slug, t.created_at
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var postID int64
		var t domain.Tag
		if err := rows.Scan(&postID, &t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		i := index[postID]
		posts[i].Tags = append(posts[i].Tags, t)
	}
	return rows.Err()
}

func scanPostSummary(row pgx.CollectableRow) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.ShortDescription, &p.ThumbnailURL,
		&p.Status, &p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
