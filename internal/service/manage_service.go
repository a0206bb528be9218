package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/repository"
	"blog-cms/internal/validator"
)

// Dashboard sizes.
const (
	dashboardLatestPosts    = 5
	dashboardRecentMessages = 3
)

// Dashboard holds the admin panel counters and the newest activity.
type Dashboard struct {
	TotalPosts      int                       `json:"total_posts"`
	PostsByStatus   map[domain.PostStatus]int `json:"posts_by_status"`
	TotalAuthors    int                       `json:"total_authors"`
	PendingComments int                       `json:"pending_comments"`
	ContactMessages int                       `json:"contact_messages"`
	LatestPosts     []domain.Post             `json:"latest_posts"`
	RecentMessages  []domain.ContactMessage   `json:"recent_messages"`
}

// MessagePage is one page of contact messages.
type MessagePage struct {
	Items    []domain.ContactMessage `json:"items"`
	PageInfo content.PageInfo        `json:"pagination"`
}

// ManageService implements the author and admin panels.
type ManageService struct {
	posts      repository.PostRepository
	authors    repository.AuthorRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	comments   repository.CommentRepository
	messages   repository.ContactMessageRepository
	validator  *validator.Validator
}

// NewManageService creates a new ManageService.
func NewManageService(
	posts repository.PostRepository,
	authors repository.AuthorRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	comments repository.CommentRepository,
	messages repository.ContactMessageRepository,
	v *validator.Validator,
) *ManageService {
	return &ManageService{
		posts:      posts,
		authors:    authors,
		categories: categories,
		tags:       tags,
		comments:   comments,
		messages:   messages,
		validator:  v,
	}
}

// Dashboard gathers the panel counters concurrently.
func (s *ManageService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.posts.CountByStatus(gctx)
		if err != nil {
			return err
		}
		d.PostsByStatus = counts
		for _, n := range counts {
			d.TotalPosts += n
		}
		return nil
	})
	g.Go(func() error {
		n, err := s.authors.Count(gctx)
		d.TotalAuthors = n
		return err
	})
	g.Go(func() error {
		n, err := s.comments.CountByStatus(gctx, domain.CommentStatusPending)
		d.PendingComments = n
		return err
	})
	g.Go(func() error {
		n, err := s.messages.Count(gctx)
		d.ContactMessages = n
		return err
	})
	g.Go(func() error {
		q := content.QueryDescriptor{
			Visibility: content.Predicate{Unrestricted: true},
			Filter:     content.Filter{Kind: content.FilterNone},
			Order:      content.OrderNewestFirst,
		}
		posts, _, err := s.posts.FetchPage(gctx, q, 0, dashboardLatestPosts)
		d.LatestPosts = posts
		return err
	})
	g.Go(func() error {
		msgs, _, err := s.messages.List(gctx, 0, dashboardRecentMessages)
		d.RecentMessages = msgs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if d.LatestPosts == nil {
		d.LatestPosts = []domain.Post{}
	}
	if d.RecentMessages == nil {
		d.RecentMessages = []domain.ContactMessage{}
	}
	return &d, nil
}

// ListPosts lists every post for an admin and the viewer's own posts for
// anyone else.
func (s *ManageService) ListPosts(ctx context.Context, viewer domain.Viewer, params content.PageParams) (content.Listing, error) {
	req := content.ListRequest{
		Viewer: viewer,
		Page:   params.Page,
		Limit:  params.Limit,
	}
	if !viewer.IsAdmin() {
		req.FilterKind = content.FilterAuthorID
		req.FilterValue = strconv.FormatInt(viewer.ID, 10)
	}
	return listWithMetrics(ctx, s.posts, req)
}

// CreatePost creates a post owned by the viewer. Admins may assign another
// author through in.AuthorID.
func (s *ManageService) CreatePost(ctx context.Context, viewer domain.Viewer, in domain.PostInput) (*domain.Post, error) {
	normalizePost(&in)
	if err := s.validator.ValidatePost(&in); err != nil {
		return nil, err
	}
	if err := checkPostStatus(viewer, "", in.Status); err != nil {
		return nil, err
	}
	if !viewer.IsAdmin() || in.AuthorID == 0 {
		in.AuthorID = viewer.ID
	}

	post, err := s.posts.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.WithViewer(logger.GetLogger(), viewer).InfoContext(ctx, "Post created", "post_id", post.ID, "status", post.Status)
	return post, nil
}

// UpdatePost updates a post the viewer may edit. Posts of other authors are
// reported as not found to non-admins.
func (s *ManageService) UpdatePost(ctx context.Context, viewer domain.Viewer, id int64, in domain.PostInput) (*domain.Post, error) {
	existing, err := s.editablePost(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	normalizePost(&in)
	if err := s.validator.ValidatePost(&in); err != nil {
		return nil, err
	}
	if err := checkPostStatus(viewer, existing.Status, in.Status); err != nil {
		return nil, err
	}

	post, err := s.posts.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	logger.WithViewer(logger.GetLogger(), viewer).InfoContext(ctx, "Post updated", "post_id", id, "status", post.Status)
	return post, nil
}

// DeletePost deletes a post the viewer may edit.
func (s *ManageService) DeletePost(ctx context.Context, viewer domain.Viewer, id int64) error {
	if _, err := s.editablePost(ctx, viewer, id); err != nil {
		return err
	}

	deleted, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	logger.WithViewer(logger.GetLogger(), viewer).InfoContext(ctx, "Post deleted", "post_id", id)
	return nil
}

// GetPost returns a post the viewer may edit.
func (s *ManageService) GetPost(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Post, error) {
	return s.editablePost(ctx, viewer, id)
}

func (s *ManageService) editablePost(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Post, error) {
	if err := viewer.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil || (!viewer.IsAdmin() && post.AuthorID != viewer.ID) {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return post, nil
}

// checkPostStatus allows authors to save drafts and submit for review. They
// may keep a status an admin already set but not move a post into one.
func checkPostStatus(viewer domain.Viewer, current, next domain.PostStatus) error {
	if viewer.IsAdmin() || next == current {
		return nil
	}
	switch next {
	case domain.PostStatusDraft, domain.PostStatusPending:
		return nil
	}
	return fmt.Errorf("status %s requires an admin: %w", next, domain.ErrForbidden)
}

func normalizePost(in *domain.PostInput) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.ThumbnailURL = strings.TrimSpace(in.ThumbnailURL)
	if in.Slug == "" {
		in.Slug = validator.Slugify(in.Title)
	}
	if in.Status == "" {
		in.Status = domain.PostStatusDraft
	}
}

// ListCategories returns all categories.
func (s *ManageService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// CreateCategory creates a category. The slug defaults to the slugified name.
func (s *ManageService) CreateCategory(ctx context.Context, in domain.TaxonomyInput) (*domain.Category, error) {
	normalizeTaxonomy(&in)
	if err := s.validator.ValidateTaxonomy(&in); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, in)
}

// DeleteCategory deletes a category.
func (s *ManageService) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListTags returns all tags.
func (s *ManageService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

// CreateTag creates a tag. The slug defaults to the slugified name.
func (s *ManageService) CreateTag(ctx context.Context, in domain.TaxonomyInput) (*domain.Tag, error) {
	normalizeTaxonomy(&in)
	in.Description = ""
	if err := s.validator.ValidateTaxonomy(&in); err != nil {
		return nil, err
	}
	return s.tags.Create(ctx, in)
}

// DeleteTag deletes a tag.
func (s *ManageService) DeleteTag(ctx context.Context, id int64) error {
	deleted, err := s.tags.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("tag %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func normalizeTaxonomy(in *domain.TaxonomyInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	if in.Slug == "" {
		in.Slug = validator.Slugify(in.Name)
	}
}

// ListAuthors returns every author.
func (s *ManageService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.authors.List(ctx)
}

// CreateAuthor registers an author with a hashed password. The role
// defaults to AUTHOR.
func (s *ManageService) CreateAuthor(ctx context.Context, in domain.AuthorInput) (*domain.Author, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Bio = strings.TrimSpace(in.Bio)
	if in.Role == "" {
		in.Role = domain.RoleAuthor
	} else if role, err := domain.ParseRole(string(in.Role)); err == nil {
		in.Role = role
	}
	if err := s.validator.ValidateAuthor(&in); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	author, err := s.authors.Create(ctx, in, hash)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Author created", "author_id", author.ID, "role", author.Role)
	return author, nil
}

// Bootstrap prepares an empty installation: it makes sure the roles exist
// and, when no author has been registered yet, creates in as an admin. It
// reports whether an admin was created.
func (s *ManageService) Bootstrap(ctx context.Context, in domain.AuthorInput) (*domain.Author, bool, error) {
	if err := s.authors.EnsureRoles(ctx); err != nil {
		return nil, false, err
	}

	n, err := s.authors.Count(ctx)
	if err != nil {
		return nil, false, err
	}
	if n > 0 {
		logger.InfoContext(ctx, "Authors already present, skipping admin bootstrap", "authors", n)
		return nil, false, nil
	}

	in.Role = domain.RoleAdmin
	author, err := s.CreateAuthor(ctx, in)
	if err != nil {
		return nil, false, err
	}
	return author, true, nil
}

// DeleteAuthor deletes an author and their posts. Admins cannot delete
// themselves.
func (s *ManageService) DeleteAuthor(ctx context.Context, viewer domain.Viewer, id int64) error {
	if viewer.ID == id {
		return fmt.Errorf("delete own account: %w", domain.ErrForbidden)
	}

	deleted, err := s.authors.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("author %d: %w", id, domain.ErrNotFound)
	}
	logger.WithViewer(logger.GetLogger(), viewer).InfoContext(ctx, "Author deleted", "author_id", id)
	return nil
}

// ListComments returns every comment for moderation.
func (s *ManageService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.List(ctx)
}

// ModerateComment sets a comment to APPROVED, REJECTED or SPAM.
func (s *ManageService) ModerateComment(ctx context.Context, id int64, status domain.CommentStatus) error {
	if err := s.validator.ValidateCommentStatus(status); err != nil {
		return err
	}

	updated, err := s.comments.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteComment deletes a comment.
func (s *ManageService) DeleteComment(ctx context.Context, id int64) error {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListContactMessages returns one page of contact messages, newest first.
func (s *ManageService) ListContactMessages(ctx context.Context, params content.PageParams) (*MessagePage, error) {
	window, err := content.Paginate(params.Page, params.Limit, 0)
	if err != nil {
		return nil, err
	}

	items, total, err := s.messages.List(ctx, window.Offset, window.Limit)
	if err != nil {
		return nil, err
	}
	info, err := content.Paginate(window.CurrentPage, window.Limit, total)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.ContactMessage{}
	}
	return &MessagePage{Items: items, PageInfo: info}, nil
}
