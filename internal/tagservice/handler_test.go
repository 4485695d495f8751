package tagservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogcms/internal/common"
)

func strptr(s string) *string {
	return &s
}

func TestCreateTag(t *testing.T) {
	db := common.TestDB(t)
	s := NewTagService(db)

	testCases := []struct {
		name    string
		req     *CreateTagRequest
		wantErr error
	}{
		{name: "valid tag", req: &CreateTagRequest{Name: "Go", Slug: "go", Color: strptr("#00ADD8")}},
		{name: "duplicate name", req: &CreateTagRequest{Name: "Go", Slug: "golang"}, wantErr: ErrDuplicateName},
		{name: "duplicate slug", req: &CreateTagRequest{Name: "Golang", Slug: "go"}, wantErr: ErrDuplicateSlug},
		{name: "missing slug", req: &CreateTagRequest{Name: "Rust"}, wantErr: common.RequiredFieldsError{Fields: []string{"name", "slug"}}},
		{name: "blank slug", req: &CreateTagRequest{Name: "Rust", Slug: "  "}, wantErr: common.ValidationError{Errors: map[string]string{"slug": "must be provided"}}},
	}

	t.Cleanup(func() { common.TruncateTables(t, db) })

	// cases share one table; the first row makes the duplicates collide
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := s.CreateTag(context.Background(), tc.req)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.NotZero(t, tag.ID)
				assert.Equal(t, "#00ADD8", *tag.Color)
			}
		})
	}

	tags, err := s.GetTags(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestUpdateTag(t *testing.T) {
	db := common.TestDB(t)
	s := NewTagService(db)
	ctx := context.Background()
	t.Cleanup(func() { common.TruncateTables(t, db) })

	goTag, err := s.CreateTag(ctx, &CreateTagRequest{Name: "Go", Slug: "go"})
	require.NoError(t, err)
	_, err = s.CreateTag(ctx, &CreateTagRequest{Name: "SQL", Slug: "sql"})
	require.NoError(t, err)

	updated, err := s.UpdateTag(ctx, goTag.ID, &TagPatch{Color: strptr("#000000")})
	require.NoError(t, err)
	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, "#000000", *updated.Color)

	_, err = s.UpdateTag(ctx, goTag.ID, &TagPatch{Slug: strptr("sql")})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	stored, err := s.GetTagByID(ctx, goTag.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", stored.Slug)

	assert.NoError(t, s.DeleteTag(ctx, goTag.ID))
	assert.ErrorIs(t, s.DeleteTag(ctx, goTag.ID), common.ErrRecordNotFound)
}
