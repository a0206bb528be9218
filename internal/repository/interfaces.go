package repository

import (
	"context"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
)

// PostRepository defines methods for post data access. Lookups return
// (nil, nil) when no row matches.
type PostRepository interface {
	content.Store
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Create(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	Update(ctx context.Context, id int64, in domain.PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context) (map[domain.PostStatus]int, error)
}

// AuthorRepository defines methods for author data access.
type AuthorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	GetByEmail(ctx context.Context, email string) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	ListWithPublishedPosts(ctx context.Context) ([]domain.Author, error)
	Create(ctx context.Context, in domain.AuthorInput, passwordHash string) (*domain.Author, error)
	Delete(ctx context.Context, id int64) (bool, error)
	EnsureRoles(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.TaxonomyInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TagRepository defines methods for tag data access.
type TagRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Top(ctx context.Context, limit int) ([]domain.Tag, error)
	Create(ctx context.Context, in domain.TaxonomyInput) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, postID int64, in domain.CommentInput) (*domain.Comment, error)
	ListApprovedForPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CommentStatus) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context, status domain.CommentStatus) (int, error)
}

// ContactMessageRepository defines methods for contact message data access.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, offset, limit int) ([]domain.ContactMessage, int, error)
	Count(ctx context.Context) (int, error)
}
