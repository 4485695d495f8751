package categoryservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogcms/internal/common"
)

func TestCategoryService(t *testing.T) {
	db := common.TestDB(t)
	s := NewCategoryService(db)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		t.Cleanup(func() { common.TruncateTables(t, db) })

		c, err := s.CreateCategory(ctx, &CreateCategoryRequest{Name: "Technology", Slug: "technology"})
		require.NoError(t, err)
		assert.Equal(t, 1, c.ID)
		assert.Nil(t, c.Description)

		_, err = s.CreateCategory(ctx, &CreateCategoryRequest{Name: "Technology", Slug: "tech"})
		assert.ErrorIs(t, err, ErrDuplicateName)

		_, err = s.CreateCategory(ctx, &CreateCategoryRequest{Name: "Design"})
		assert.Equal(t, common.RequiredFieldsError{Fields: []string{"name", "slug"}}, err)

		_, err = s.CreateCategory(ctx, &CreateCategoryRequest{Name: " ", Slug: "blank"})
		assert.Equal(t, common.ValidationError{Errors: map[string]string{"name": "must be provided"}}, err)

		categories, err := s.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})

	t.Run("update", func(t *testing.T) {
		t.Cleanup(func() { common.TruncateTables(t, db) })

		c, err := s.CreateCategory(ctx, &CreateCategoryRequest{Name: "Business", Slug: "business"})
		require.NoError(t, err)
		_, err = s.CreateCategory(ctx, &CreateCategoryRequest{Name: "Design", Slug: "design"})
		require.NoError(t, err)

		description := "Money matters"
		updated, err := s.UpdateCategory(ctx, c.ID, &CategoryPatch{Description: &description})
		require.NoError(t, err)
		assert.Equal(t, "Business", updated.Name)
		assert.Equal(t, "Money matters", *updated.Description)
		assert.False(t, updated.UpdatedAt.Before(c.UpdatedAt))

		name := "Design"
		_, err = s.UpdateCategory(ctx, c.ID, &CategoryPatch{Name: &name})
		assert.ErrorIs(t, err, ErrDuplicateName)

		_, err = s.UpdateCategory(ctx, 999, &CategoryPatch{})
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Cleanup(func() { common.TruncateTables(t, db) })

		c, err := s.CreateCategory(ctx, &CreateCategoryRequest{Name: "Tutorial", Slug: "tutorial"})
		require.NoError(t, err)

		assert.NoError(t, s.DeleteCategory(ctx, c.ID))
		_, err = s.GetCategoryByID(ctx, c.ID)
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
		assert.ErrorIs(t, s.DeleteCategory(ctx, c.ID), common.ErrRecordNotFound)
	})
}
