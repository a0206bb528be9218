package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/mocks"
	"blog-cms/internal/service"
	"blog-cms/internal/validator"
)

type contentMocks struct {
	posts      *mocks.MockPostRepository
	authors    *mocks.MockAuthorRepository
	categories *mocks.MockCategoryRepository
	tags       *mocks.MockTagRepository
	comments   *mocks.MockCommentRepository
	messages   *mocks.MockContactMessageRepository
}

func newContentService(t *testing.T) (*service.ContentService, contentMocks) {
	m := contentMocks{
		posts:      mocks.NewMockPostRepository(t),
		authors:    mocks.NewMockAuthorRepository(t),
		categories: mocks.NewMockCategoryRepository(t),
		tags:       mocks.NewMockTagRepository(t),
		comments:   mocks.NewMockCommentRepository(t),
		messages:   mocks.NewMockContactMessageRepository(t),
	}
	svc := service.NewContentService(m.posts, m.authors, m.categories, m.tags, m.comments, m.messages, validator.NewValidator())
	return svc, m
}

func TestContentService_ListPosts(t *testing.T) {
	t.Run("anonymous listing is restricted to published", func(t *testing.T) {
		svc, m := newContentService(t)

		m.posts.EXPECT().
			FetchPage(mock.Anything, mock.MatchedBy(func(q content.QueryDescriptor) bool {
				return !q.Visibility.Unrestricted && q.Visibility.Status == domain.PostStatusPublished && q.Visibility.OwnerID == 0
			}), 20, 10).
			Return([]domain.Post{{ID: 5}}, 25, nil)

		listing, err := svc.ListPosts(context.Background(), content.ListRequest{
			Viewer: domain.Anonymous(),
			Page:   3,
			Limit:  10,
		})
		require.NoError(t, err)
		assert.Len(t, listing.Items, 1)
		assert.Equal(t, 3, listing.PageInfo.TotalPages)
		assert.False(t, listing.PageInfo.HasNext)
		assert.True(t, listing.PageInfo.HasPrev)
	})

	t.Run("invalid limit does not reach the store", func(t *testing.T) {
		svc, _ := newContentService(t)

		_, err := svc.ListPosts(context.Background(), content.ListRequest{Viewer: domain.Anonymous(), Page: 1, Limit: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		svc, m := newContentService(t)
		boom := errors.New("connection reset")

		m.posts.EXPECT().FetchPage(mock.Anything, mock.Anything, 0, 10).Return(nil, 0, boom)

		_, err := svc.ListPosts(context.Background(), content.ListRequest{Viewer: domain.Anonymous(), Page: 1, Limit: 10})
		assert.ErrorIs(t, err, boom)
	})
}

func TestContentService_ListCategoryPosts(t *testing.T) {
	params := content.PageParams{Page: 1, Limit: 10}

	t.Run("unknown category is not found", func(t *testing.T) {
		svc, m := newContentService(t)
		m.categories.EXPECT().GetBySlug(mock.Anything, "nonexistent").Return(nil, nil)

		_, err := svc.ListCategoryPosts(context.Background(), domain.Anonymous(), "nonexistent", params)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("existing category lists its posts", func(t *testing.T) {
		svc, m := newContentService(t)
		category := &domain.Category{ID: 1, Name: "Go", Slug: "go"}
		m.categories.EXPECT().GetBySlug(mock.Anything, "go").Return(category, nil)
		m.posts.EXPECT().
			FetchPage(mock.Anything, mock.MatchedBy(func(q content.QueryDescriptor) bool {
				return q.Filter.Kind == content.FilterCategorySlug && q.Filter.Slug == "go"
			}), 0, 10).
			Return([]domain.Post{}, 0, nil)

		got, err := svc.ListCategoryPosts(context.Background(), domain.Anonymous(), "go", params)
		require.NoError(t, err)
		assert.Equal(t, category, got.Category)
		assert.Empty(t, got.Items)
		assert.Equal(t, 1, got.PageInfo.TotalPages)
	})
}

func TestContentService_ListTagPosts(t *testing.T) {
	svc, m := newContentService(t)
	m.tags.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, nil)

	_, err := svc.ListTagPosts(context.Background(), domain.Anonymous(), "missing", content.PageParams{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentService_GetAuthorProfile(t *testing.T) {
	t.Run("unknown author is not found", func(t *testing.T) {
		svc, m := newContentService(t)
		m.authors.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, nil)

		_, err := svc.GetAuthorProfile(context.Background(), domain.Anonymous(), 9, content.PageParams{Page: 1, Limit: 10})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("lists posts filtered by author", func(t *testing.T) {
		svc, m := newContentService(t)
		m.authors.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Author{ID: 3, Name: "Ann"}, nil)
		m.posts.EXPECT().
			FetchPage(mock.Anything, mock.MatchedBy(func(q content.QueryDescriptor) bool {
				return q.Filter.Kind == content.FilterAuthorID && q.Filter.AuthorID == 3
			}), 0, 10).
			Return([]domain.Post{{ID: 1, AuthorID: 3}}, 1, nil)

		got, err := svc.GetAuthorProfile(context.Background(), domain.Anonymous(), 3, content.PageParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Author.Name)
		assert.Len(t, got.Items, 1)
	})
}

func TestContentService_GetPost(t *testing.T) {
	draft := &domain.Post{ID: 4, Slug: "draft", Status: domain.PostStatusDraft, AuthorID: 7}

	t.Run("draft is hidden from anonymous viewers", func(t *testing.T) {
		svc, m := newContentService(t)
		m.posts.EXPECT().GetBySlug(mock.Anything, "draft").Return(draft, nil)

		_, err := svc.GetPost(context.Background(), domain.Anonymous(), "draft")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("draft is visible to its author", func(t *testing.T) {
		svc, m := newContentService(t)
		m.posts.EXPECT().GetBySlug(mock.Anything, "draft").Return(draft, nil)
		m.comments.EXPECT().ListApprovedForPost(mock.Anything, int64(4)).Return(nil, nil)

		got, err := svc.GetPost(context.Background(), domain.Authenticated(7, domain.RoleAuthor), "draft")
		require.NoError(t, err)
		assert.Equal(t, draft, got.Post)
		assert.NotNil(t, got.Comments)
	})

	t.Run("invalid viewer is rejected before lookup", func(t *testing.T) {
		svc, _ := newContentService(t)

		_, err := svc.GetPost(context.Background(), domain.Authenticated(7, "EDITOR"), "draft")
		assert.ErrorIs(t, err, domain.ErrInvalidViewer)
	})
}

func TestContentService_AddComment(t *testing.T) {
	published := &domain.Post{ID: 2, Slug: "hello", Status: domain.PostStatusPublished}

	t.Run("stores a pending comment", func(t *testing.T) {
		svc, m := newContentService(t)
		m.posts.EXPECT().GetBySlug(mock.Anything, "hello").Return(published, nil)
		m.comments.EXPECT().
			Create(mock.Anything, int64(2), domain.CommentInput{AuthorName: "Ann", Content: "Nice post"}).
			Return(&domain.Comment{ID: 1, PostID: 2, Status: domain.CommentStatusPending}, nil)

		got, err := svc.AddComment(context.Background(), domain.Anonymous(), "hello", domain.CommentInput{
			AuthorName: "  Ann ",
			Content:    "Nice post ",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.CommentStatusPending, got.Status)
	})

	t.Run("invalid comment is rejected before lookup", func(t *testing.T) {
		svc, _ := newContentService(t)

		_, err := svc.AddComment(context.Background(), domain.Anonymous(), "hello", domain.CommentInput{})
		require.Error(t, err)
		_, ok := validator.FieldErrors(err)
		assert.True(t, ok)
	})
}

func TestContentService_SubmitContact(t *testing.T) {
	t.Run("valid message is stored", func(t *testing.T) {
		svc, m := newContentService(t)
		m.messages.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).
			Run(func(_ context.Context, msg *domain.ContactMessage) { msg.ID = 11 }).
			Return(nil)

		msg := &domain.ContactMessage{Name: "Ann", Email: "ann@example.com", Subject: "Hi", MessageBody: "Hello"}
		require.NoError(t, svc.SubmitContact(context.Background(), msg))
		assert.Equal(t, int64(11), msg.ID)
	})

	t.Run("missing email is a validation error", func(t *testing.T) {
		svc, _ := newContentService(t)

		err := svc.SubmitContact(context.Background(), &domain.ContactMessage{Name: "Ann", Subject: "Hi", MessageBody: "Hello"})
		fields, ok := validator.FieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "email")
	})
}

func TestContentService_Lists(t *testing.T) {
	svc, m := newContentService(t)
	m.tags.EXPECT().Top(mock.Anything, service.TopTagsLimit).Return([]domain.Tag{{Slug: "go"}}, nil)
	m.authors.EXPECT().ListWithPublishedPosts(mock.Anything).Return([]domain.Author{{Name: "Ann"}}, nil)
	m.categories.EXPECT().List(mock.Anything).Return([]domain.Category{{Slug: "news"}}, nil)

	tags, err := svc.ListTopTags(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	authors, err := svc.ListAuthors(context.Background())
	require.NoError(t, err)
	assert.Len(t, authors, 1)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
