package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCategoryRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCategoryRepository(newTestDB(t))

	category := &catalog.Category{Type: "Electronics"}
	require.NoError(t, repo.Save(ctx, category))
	require.NotZero(t, category.ID)

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", found.Type)
	assert.Empty(t, found.ProductIDs)
}

func TestGormCategoryRepository_DuplicateType(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCategoryRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, &catalog.Category{Type: "Electronics"}))

	err := repo.Save(ctx, &catalog.Category{Type: "Electronics"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrUniquenessViolation))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGormCategoryRepository_RenameToExistingType(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCategoryRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, &catalog.Category{Type: "Books"}))
	garden := &catalog.Category{Type: "Garden"}
	require.NoError(t, repo.Save(ctx, garden))

	garden.Overwrite("Books")
	err := repo.Save(ctx, garden)
	assert.True(t, errors.Is(err, shared.ErrUniquenessViolation))
}

func TestGormCategoryRepository_SaveAddsLinksIdempotently(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewGormProductRepository(db)
	repo := NewGormCategoryRepository(db)

	first := saveProduct(t, products, "Phone", nil)
	second := saveProduct(t, products, "Tablet", nil)

	category := &catalog.Category{Type: "Electronics"}
	category.LinkProduct(first.ID)
	require.NoError(t, repo.Save(ctx, category))

	// saving again with the existing link plus a new one must not fail
	category.LinkProduct(second.ID)
	require.NoError(t, repo.Save(ctx, category))

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID, second.ID}, found.ProductIDs)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []int64{first.ID, second.ID}, all[0].ProductIDs)
}

func TestGormCategoryRepository_DeleteKeepsProducts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewGormProductRepository(db)
	repo := NewGormCategoryRepository(db)

	product := saveProduct(t, products, "Phone", nil)
	category := &catalog.Category{Type: "Electronics", ProductIDs: []int64{product.ID}}
	require.NoError(t, repo.Save(ctx, category))

	require.NoError(t, repo.Delete(ctx, category))

	_, err := repo.FindByID(ctx, category.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.Equal(t, "Category with ID=1 does not exist.", err.Error())

	found, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Categories)
}

func TestGormCategoryRepository_Delete_Missing(t *testing.T) {
	repo := NewGormCategoryRepository(newTestDB(t))

	err := repo.Delete(context.Background(), &catalog.Category{ID: 3})
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
