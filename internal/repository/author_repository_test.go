package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/repository"
)

func TestPostgresAuthorRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	ctx := context.Background()

	t.Run("get by email is case insensitive and carries the hash", func(t *testing.T) {
		f := seedFixtures(t, testDB)

		got, err := f.authors.GetByEmail(ctx, "Alice@Example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, f.alice.ID, got.ID)
		assert.Equal(t, "hash", got.PasswordHash)
		assert.Equal(t, domain.RoleAuthor, got.Role)
	})

	t.Run("missing author returns nil", func(t *testing.T) {
		f := seedFixtures(t, testDB)

		got, err := f.authors.GetByID(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		f := seedFixtures(t, testDB)

		_, err := f.authors.Create(ctx, domain.AuthorInput{Name: "Again", Email: "ALICE@example.com", Role: domain.RoleAuthor}, "h")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown role is not found", func(t *testing.T) {
		f := seedFixtures(t, testDB)

		_, err := f.authors.Create(ctx, domain.AuthorInput{Name: "Eve", Email: "eve@example.com", Role: "EDITOR"}, "h")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("only authors with published posts are listed publicly", func(t *testing.T) {
		f := seedFixtures(t, testDB)
		createPost(t, f.posts, "p1", f.bob.ID, domain.PostStatusPublished, nil, nil)
		createPost(t, f.posts, "p2", f.bob.ID, domain.PostStatusPublished, nil, nil)
		createPost(t, f.posts, "d1", f.alice.ID, domain.PostStatusDraft, nil, nil)

		public, err := f.authors.ListWithPublishedPosts(ctx)
		require.NoError(t, err)
		require.Len(t, public, 1)
		assert.Equal(t, "bob", public[0].Name)
		assert.Equal(t, 2, public[0].PublishedPosts)

		all, err := f.authors.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		n, err := f.authors.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("ensure roles is idempotent", func(t *testing.T) {
		seedFixtures(t, testDB)
		authors := repository.NewPostgresAuthorRepository(testDB.Pool)

		require.NoError(t, authors.EnsureRoles(ctx))
		require.NoError(t, authors.EnsureRoles(ctx))
	})

	t.Run("delete", func(t *testing.T) {
		f := seedFixtures(t, testDB)

		deleted, err := f.authors.Delete(ctx, f.bob.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := f.authors.GetByID(ctx, f.bob.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPostgresTaxonomyRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	ctx := context.Background()

	categories := repository.NewPostgresCategoryRepository(testDB.Pool)
	tags := repository.NewPostgresTagRepository(testDB.Pool)

	t.Run("category lookup and counts", func(t *testing.T) {
		f := seedFixtures(t, testDB)
		createPost(t, f.posts, "p1", f.alice.ID, domain.PostStatusPublished, []int64{f.golang.ID}, nil)
		createPost(t, f.posts, "d1", f.alice.ID, domain.PostStatusDraft, []int64{f.golang.ID}, nil)

		got, err := categories.GetBySlug(ctx, "go")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 1, got.PostCount)

		missing, err := categories.GetBySlug(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Nil(t, missing)

		_, err = categories.Create(ctx, domain.TaxonomyInput{Name: "Go again", Slug: "go"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		list, err := categories.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("top tags skip unused tags", func(t *testing.T) {
		f := seedFixtures(t, testDB)
		sql, err := tags.Create(ctx, domain.TaxonomyInput{Name: "sql", Slug: "sql"})
		require.NoError(t, err)
		_, err = tags.Create(ctx, domain.TaxonomyInput{Name: "unused", Slug: "unused"})
		require.NoError(t, err)

		createPost(t, f.posts, "p1", f.alice.ID, domain.PostStatusPublished, nil, []int64{f.pgxTag.ID, sql.ID})
		createPost(t, f.posts, "p2", f.alice.ID, domain.PostStatusPublished, nil, []int64{sql.ID})

		top, err := tags.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "sql", top[0].Slug)
		assert.Equal(t, 2, top[0].PostCount)

		all, err := tags.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("delete unlinks posts", func(t *testing.T) {
		f := seedFixtures(t, testDB)
		post := createPost(t, f.posts, "p1", f.alice.ID, domain.PostStatusPublished, []int64{f.golang.ID}, []int64{f.pgxTag.ID})

		deleted, err := categories.Delete(ctx, f.golang.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = tags.Delete(ctx, f.pgxTag.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := f.posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.Categories)
		assert.Empty(t, got.Tags)

		deleted, err = tags.Delete(ctx, f.pgxTag.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestPostgresCommentAndContactRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	ctx := context.Background()

	t.Run("only approved comments are listed for a post", func(t *testing.T) {
		f := seedFixtures(t, testDB)
		post := createPost(t, f.posts, "p1", f.alice.ID, domain.PostStatusPublished, nil, nil)

		first, err := f.comments.Create(ctx, post.ID, domain.CommentInput{AuthorName: "r1", AuthorEmail: "r1@example.com", Content: "one"})
		require.NoError(t, err)
		assert.Equal(t, domain.CommentStatusPending, first.Status)
		require.NotNil(t, first.AuthorEmail)

		second, err := f.comments.Create(ctx, post.ID, domain.CommentInput{AuthorName: "r2", Content: "two"})
		require.NoError(t, err)
		assert.Nil(t, second.AuthorEmail)

		ok, err := f.comments.UpdateStatus(ctx, first.ID, domain.CommentStatusApproved)
		require.NoError(t, err)
		assert.True(t, ok)

		approved, err := f.comments.ListApprovedForPost(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, first.ID, approved[0].ID)
		assert.Equal(t, post.Title, approved[0].PostTitle)

		pending, err := f.comments.CountByStatus(ctx, domain.CommentStatusPending)
		require.NoError(t, err)
		assert.Equal(t, 1, pending)

		ok, err = f.comments.Delete(ctx, second.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = f.comments.UpdateStatus(ctx, second.ID, domain.CommentStatusSpam)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("comment on missing post is not found", func(t *testing.T) {
		f := seedFixtures(t, testDB)

		_, err := f.comments.Create(ctx, 424242, domain.CommentInput{AuthorName: "r", Content: "c"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("contact messages page newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "contact_messages")
		repo := repository.NewPostgresContactMessageRepository(testDB.Pool)

		for _, subject := range []string{"first", "second", "third"} {
			msg := &domain.ContactMessage{Name: "n", Email: "n@example.com", Subject: subject, MessageBody: "m"}
			require.NoError(t, repo.Create(ctx, msg))
			assert.NotZero(t, msg.ID)
		}

		page, total, err := repo.List(ctx, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 2)
		assert.Equal(t, "third", page[0].Subject)

		page, _, err = repo.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "first", page[0].Subject)
	})
}
