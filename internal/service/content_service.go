package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/repository"
	"blog-cms/internal/validator"
)

// TopTagsLimit is the number of tags returned by ListTopTags.
const TopTagsLimit = 10

// CategoryListing is a category page.
type CategoryListing struct {
	Category *domain.Category `json:"category"`
	content.Listing
}

// TagListing is a tag page.
type TagListing struct {
	Tag *domain.Tag `json:"tag"`
	content.Listing
}

// AuthorListing is an author profile page.
type AuthorListing struct {
	Author *domain.Author `json:"author"`
	content.Listing
}

// PostDetail is a single post with its approved comments.
type PostDetail struct {
	Post     *domain.Post     `json:"post"`
	Comments []domain.Comment `json:"comments"`
}

// ContentService serves the public side of the blog.
type ContentService struct {
	posts      repository.PostRepository
	authors    repository.AuthorRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	comments   repository.CommentRepository
	messages   repository.ContactMessageRepository
	validator  *validator.Validator
}

// NewContentService creates a new ContentService.
func NewContentService(
	posts repository.PostRepository,
	authors repository.AuthorRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	comments repository.CommentRepository,
	messages repository.ContactMessageRepository,
	v *validator.Validator,
) *ContentService {
	return &ContentService{
		posts:      posts,
		authors:    authors,
		categories: categories,
		tags:       tags,
		comments:   comments,
		messages:   messages,
		validator:  v,
	}
}

// ListPosts returns one page of posts for req.
func (s *ContentService) ListPosts(ctx context.Context, req content.ListRequest) (content.Listing, error) {
	return listWithMetrics(ctx, s.posts, req)
}

// ListCategoryPosts returns the category named by slug and a page of its
// posts. An unknown slug is domain.ErrNotFound.
func (s *ContentService) ListCategoryPosts(ctx context.Context, viewer domain.Viewer, slug string, params content.PageParams) (*CategoryListing, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %q: %w", slug, domain.ErrNotFound)
	}

	listing, err := listWithMetrics(ctx, s.posts, content.ListRequest{
		Viewer:      viewer,
		FilterKind:  content.FilterCategorySlug,
		FilterValue: slug,
		Page:        params.Page,
		Limit:       params.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryListing{Category: category, Listing: listing}, nil
}

// ListTagPosts returns the tag named by slug and a page of its posts.
func (s *ContentService) ListTagPosts(ctx context.Context, viewer domain.Viewer, slug string, params content.PageParams) (*TagListing, error) {
	tag, err := s.tags.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, fmt.Errorf("tag %q: %w", slug, domain.ErrNotFound)
	}

	listing, err := listWithMetrics(ctx, s.posts, content.ListRequest{
		Viewer:      viewer,
		FilterKind:  content.FilterTagSlug,
		FilterValue: slug,
		Page:        params.Page,
		Limit:       params.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &TagListing{Tag: tag, Listing: listing}, nil
}

// GetAuthorProfile returns the author with id and a page of their posts.
func (s *ContentService) GetAuthorProfile(ctx context.Context, viewer domain.Viewer, id int64, params content.PageParams) (*AuthorListing, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("author %d: %w", id, domain.ErrNotFound)
	}

	listing, err := listWithMetrics(ctx, s.posts, content.ListRequest{
		Viewer:      viewer,
		FilterKind:  content.FilterAuthorID,
		FilterValue: strconv.FormatInt(id, 10),
		Page:        params.Page,
		Limit:       params.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &AuthorListing{Author: author, Listing: listing}, nil
}

// GetPost returns the post with slug if the viewer may see it. Posts the
// viewer may not see are reported as not found.
func (s *ContentService) GetPost(ctx context.Context, viewer domain.Viewer, slug string) (*PostDetail, error) {
	post, err := s.visiblePost(ctx, viewer, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListApprovedForPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return &PostDetail{Post: post, Comments: comments}, nil
}

// AddComment validates in and stores it as a pending comment on the post
// with slug.
func (s *ContentService) AddComment(ctx context.Context, viewer domain.Viewer, slug string, in domain.CommentInput) (*domain.Comment, error) {
	in.AuthorName = strings.TrimSpace(in.AuthorName)
	in.AuthorEmail = strings.TrimSpace(in.AuthorEmail)
	in.Content = strings.TrimSpace(in.Content)
	if err := s.validator.ValidateComment(&in); err != nil {
		return nil, err
	}

	post, err := s.visiblePost(ctx, viewer, slug)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, post.ID, in)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Comment submitted", "comment_id", comment.ID, "post_id", post.ID)
	return comment, nil
}

func (s *ContentService) visiblePost(ctx context.Context, viewer domain.Viewer, slug string) (*domain.Post, error) {
	predicate, err := content.VisiblePredicate(viewer)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !predicate.Admits(*post) {
		return nil, fmt.Errorf("post %q: %w", slug, domain.ErrNotFound)
	}
	return post, nil
}

// ListCategories returns all categories.
func (s *ContentService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// ListTopTags returns the most used tags.
func (s *ContentService) ListTopTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.Top(ctx, TopTagsLimit)
}

// ListAuthors returns the authors that have published something.
func (s *ContentService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.authors.ListWithPublishedPosts(ctx)
}

// SubmitContact validates and stores msg.
func (s *ContentService) SubmitContact(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.MessageBody = strings.TrimSpace(msg.MessageBody)
	if err := s.validator.ValidateContact(msg); err != nil {
		return err
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Contact message received", "message_id", msg.ID)
	return nil
}

// listWithMetrics runs one listing and records its outcome.
func listWithMetrics(ctx context.Context, store content.Store, req content.ListRequest) (content.Listing, error) {
	timer := metrics.NewTimer()
	listing, err := content.ListContent(ctx, store, req)

	result := metrics.ResultOK
	switch {
	case err != nil:
		result = metrics.ResultError
	case len(listing.Items) == 0:
		result = metrics.ResultEmpty
	}
	metrics.ObserveListing(string(req.FilterKind), result, timer.Seconds())

	if err != nil && !isClientError(err) {
		logger.ErrorContext(ctx, "Listing failed", "filter_kind", req.FilterKind, "error", err)
	}
	return listing, err
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidLimit) ||
		errors.Is(err, domain.ErrInvalidFilter) ||
		errors.Is(err, domain.ErrInvalidViewer)
}
