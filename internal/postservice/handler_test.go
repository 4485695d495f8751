package postservice

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogcms/internal/common"
	"github.com/sushihentaime/blogcms/internal/userservice"
)

// setupTestUser is a helper function to create a test user in the database.
func setupTestUser(t *testing.T, db *sql.DB) int {
	query := `
		INSERT INTO users (email, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := db.QueryRow(query, "testuser@example.com", "testuser", "Test", "User").Scan(&id)
	require.NoError(t, err)

	return id
}

func setupTestEnvironment(t *testing.T) (*PostService, *sql.DB) {
	db := common.TestDB(t)
	return NewPostService(db, userservice.NewUserService(db)), db
}

func statusptr(s Status) *Status {
	return &s
}

func countPosts(t *testing.T, db *sql.DB) int {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	require.NoError(t, err)
	return count
}

func TestCreatePost(t *testing.T) {
	s, db := setupTestEnvironment(t)

	testCases := []struct {
		name          string
		req           func(userID int) *CreatePostRequest
		wantErr       error
		wantStatus    Status
		wantPublished bool
	}{
		{
			name: "valid post defaults to draft",
			req: func(userID int) *CreatePostRequest {
				return &CreatePostRequest{Title: "Test Post", Slug: "test-post", Content: "This is a test post.", AuthorID: userID}
			},
			wantStatus: StatusDraft,
		},
		{
			name: "published on create",
			req: func(userID int) *CreatePostRequest {
				return &CreatePostRequest{Title: "Test Post", Slug: "test-post", Content: "body", Status: StatusPublished, AuthorID: userID}
			},
			wantStatus:    StatusPublished,
			wantPublished: true,
		},
		{
			name: "missing author",
			req: func(userID int) *CreatePostRequest {
				return &CreatePostRequest{Title: "Test Post", Slug: "test-post", Content: "body"}
			},
			wantErr: common.RequiredFieldsError{Fields: []string{"title", "slug", "content", "authorId"}},
		},
		{
			name: "unknown author",
			req: func(userID int) *CreatePostRequest {
				return &CreatePostRequest{Title: "Test Post", Slug: "test-post", Content: "body", AuthorID: userID + 999}
			},
			wantErr: common.ErrReferenceNotFound,
		},
		{
			name: "invalid status",
			req: func(userID int) *CreatePostRequest {
				return &CreatePostRequest{Title: "Test Post", Slug: "test-post", Content: "body", Status: "deleted", AuthorID: userID}
			},
			wantErr: common.ValidationError{Errors: map[string]string{"status": "must be one of draft, published, archived"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(func() { common.TruncateTables(t, db) })
			userID := setupTestUser(t, db)

			p, err := s.CreatePost(context.Background(), tc.req(userID))
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, common.ErrReferenceNotFound) {
					var refErr *common.ReferenceError
					require.ErrorAs(t, err, &refErr)
					assert.Equal(t, "Author not found", refErr.Error())
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				assert.Zero(t, countPosts(t, db))
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, p.ID)
			assert.Equal(t, tc.wantStatus, p.Status)
			assert.Equal(t, tc.wantPublished, p.PublishedAt != nil)
			assert.Equal(t, 1, countPosts(t, db))
		})
	}
}

func TestUpdatePost_Publish(t *testing.T) {
	s, db := setupTestEnvironment(t)
	t.Cleanup(func() { common.TruncateTables(t, db) })
	ctx := context.Background()

	userID := setupTestUser(t, db)
	p, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Draft", Slug: "draft", Content: "body", AuthorID: userID})
	require.NoError(t, err)
	require.Nil(t, p.PublishedAt)

	published, err := s.UpdatePost(ctx, p.ID, &PostPatch{Status: statusptr(StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	stamp := *published.PublishedAt

	again, err := s.UpdatePost(ctx, p.ID, &PostPatch{Status: statusptr(StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.True(t, stamp.Equal(*again.PublishedAt))

	archived, err := s.UpdatePost(ctx, p.ID, &PostPatch{Status: statusptr(StatusArchived)})
	require.NoError(t, err)
	require.NotNil(t, archived.PublishedAt)
	assert.True(t, stamp.Equal(*archived.PublishedAt))

	stored, err := s.GetPostByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, stored.Status)
	assert.True(t, stamp.Equal(*stored.PublishedAt))
}

func TestUpdatePost(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		patch   func(userID int) *PostPatch
		wantErr error
		check   func(t *testing.T, p *Post)
	}{
		{
			name: "title only",
			patch: func(int) *PostPatch {
				title := "Updated"
				return &PostPatch{Title: &title}
			},
			check: func(t *testing.T, p *Post) {
				assert.Equal(t, "Updated", p.Title)
				assert.Equal(t, "body", p.Content)
				assert.Equal(t, StatusDraft, p.Status)
			},
		},
		{
			name: "unknown author",
			patch: func(userID int) *PostPatch {
				author := userID + 999
				return &PostPatch{AuthorID: &author}
			},
			wantErr: common.ErrReferenceNotFound,
		},
		{
			name: "empty content",
			patch: func(int) *PostPatch {
				content := ""
				return &PostPatch{Content: &content}
			},
			wantErr: common.ValidationError{Errors: map[string]string{"content": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(func() { common.TruncateTables(t, db) })
			userID := setupTestUser(t, db)

			created, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Post", Slug: "post", Content: "body", AuthorID: userID})
			require.NoError(t, err)

			p, err := s.UpdatePost(ctx, created.ID, tc.patch(userID))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				stored, err := s.GetPostByID(ctx, created.ID)
				require.NoError(t, err)
				assert.Equal(t, created.Title, stored.Title)
				assert.Equal(t, created.AuthorID, stored.AuthorID)
				return
			}

			require.NoError(t, err)
			tc.check(t, p)
		})
	}

	t.Run("missing post", func(t *testing.T) {
		_, err := s.UpdatePost(ctx, 999, &PostPatch{})
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	s, db := setupTestEnvironment(t)
	t.Cleanup(func() { common.TruncateTables(t, db) })
	ctx := context.Background()

	userID := setupTestUser(t, db)
	p, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Post", Slug: "post", Content: "body", AuthorID: userID})
	require.NoError(t, err)

	assert.NoError(t, s.DeletePost(ctx, p.ID))
	assert.ErrorIs(t, s.DeletePost(ctx, p.ID), common.ErrRecordNotFound)

	posts, err := s.GetPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPublishIgnoresDraftPublishedAt(t *testing.T) {
	s, db := setupTestEnvironment(t)
	t.Cleanup(func() { common.TruncateTables(t, db) })
	ctx := context.Background()

	userID := setupTestUser(t, db)
	backdated := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	draft, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Draft", Slug: "draft", Content: "body", AuthorID: userID, PublishedAt: &backdated})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	_, err = s.UpdatePost(ctx, draft.ID, &PostPatch{PublishedAt: &backdated})
	require.NoError(t, err)

	stored, err := s.GetPostByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PublishedAt)

	before := time.Now().Add(-time.Minute)
	published, err := s.UpdatePost(ctx, draft.ID, &PostPatch{Status: statusptr(StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	assert.True(t, published.PublishedAt.After(before))

	// a post created as published may be backdated
	old, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Old", Slug: "old", Content: "body", AuthorID: userID, Status: StatusPublished, PublishedAt: &backdated})
	require.NoError(t, err)
	require.NotNil(t, old.PublishedAt)
	assert.True(t, backdated.Equal(*old.PublishedAt))
}
