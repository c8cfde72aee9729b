package services

import (
	"context"
	"testing"

	"eventmanagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCategoryService(&fakeUoW{store}, &fakeCategoryRepo{store}, testTimeout)

		c, err := svc.CreateCategory(ctx, &domain.Category{Name: "Tech", Description: "technology"})
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("empty name", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCategoryService(&fakeUoW{store}, &fakeCategoryRepo{store}, testTimeout)

		_, err := svc.CreateCategory(ctx, &domain.Category{})
		require.True(t, domain.IsValidation(err))
	})

	t.Run("duplicate name", func(t *testing.T) {
		store := newFakeStore()
		store.addCategory("Tech")
		svc := NewCategoryService(&fakeUoW{store}, &fakeCategoryRepo{store}, testTimeout)

		_, err := svc.CreateCategory(ctx, &domain.Category{Name: "Tech"})
		require.True(t, domain.IsConflict(err))
		require.EqualError(t, err, `category "Tech" already exists`)
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("rename to a taken name", func(t *testing.T) {
		store := newFakeStore()
		c := store.addCategory("Tech")
		store.addCategory("Business")
		svc := NewCategoryService(&fakeUoW{store}, &fakeCategoryRepo{store}, testTimeout)

		err := svc.UpdateCategory(ctx, &domain.Category{ID: c.ID, Name: "Business"})
		require.True(t, domain.IsConflict(err))
	})

	t.Run("same name is not a conflict", func(t *testing.T) {
		store := newFakeStore()
		c := store.addCategory("Tech")
		svc := NewCategoryService(&fakeUoW{store}, &fakeCategoryRepo{store}, testTimeout)

		err := svc.UpdateCategory(ctx, &domain.Category{ID: c.ID, Name: "Tech", Description: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "updated", store.categories[c.ID].Description)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	c := store.addCategory("Tech")
	svc := NewCategoryService(&fakeUoW{store}, &fakeCategoryRepo{store}, testTimeout)

	deleted, err := svc.DeleteCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
