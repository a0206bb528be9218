package service

import (
	"context"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
)

// ContentServiceInterface defines the public read side of the blog plus
// reader submissions. Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	// ListPosts returns one page of posts visible to the request's viewer.
	ListPosts(ctx context.Context, req content.ListRequest) (content.Listing, error)
	// ListCategoryPosts returns a category and a page of its visible posts.
	ListCategoryPosts(ctx context.Context, viewer domain.Viewer, slug string, params content.PageParams) (*CategoryListing, error)
	// ListTagPosts returns a tag and a page of its visible posts.
	ListTagPosts(ctx context.Context, viewer domain.Viewer, slug string, params content.PageParams) (*TagListing, error)
	// GetAuthorProfile returns an author and a page of their visible posts.
	GetAuthorProfile(ctx context.Context, viewer domain.Viewer, id int64, params content.PageParams) (*AuthorListing, error)
	// GetPost returns a visible post with its approved comments.
	GetPost(ctx context.Context, viewer domain.Viewer, slug string) (*PostDetail, error)
	// AddComment stores a pending comment on a visible post.
	AddComment(ctx context.Context, viewer domain.Viewer, slug string, in domain.CommentInput) (*domain.Comment, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListTopTags(ctx context.Context) ([]domain.Tag, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	// SubmitContact stores a contact form message.
	SubmitContact(ctx context.Context, msg *domain.ContactMessage) error
}

// AuthServiceInterface defines session issuing and verification.
type AuthServiceInterface interface {
	// Login checks credentials and issues a signed session.
	Login(ctx context.Context, creds domain.Credentials) (*Session, error)
	// ParseToken verifies a session token and returns its viewer.
	ParseToken(token string) (domain.Viewer, error)
}

// ManageServiceInterface defines the author and admin panel operations.
// Scope checks happen in middleware; ownership checks happen here.
type ManageServiceInterface interface {
	Dashboard(ctx context.Context) (*Dashboard, error)

	ListPosts(ctx context.Context, viewer domain.Viewer, params content.PageParams) (content.Listing, error)
	GetPost(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, viewer domain.Viewer, in domain.PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, viewer domain.Viewer, id int64, in domain.PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, viewer domain.Viewer, id int64) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in domain.TaxonomyInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, in domain.TaxonomyInput) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) error

	ListAuthors(ctx context.Context) ([]domain.Author, error)
	CreateAuthor(ctx context.Context, in domain.AuthorInput) (*domain.Author, error)
	DeleteAuthor(ctx context.Context, viewer domain.Viewer, id int64) error

	ListComments(ctx context.Context) ([]domain.Comment, error)
	ModerateComment(ctx context.Context, id int64, status domain.CommentStatus) error
	DeleteComment(ctx context.Context, id int64) error

	ListContactMessages(ctx context.Context, params content.PageParams) (*MessagePage, error)
}
