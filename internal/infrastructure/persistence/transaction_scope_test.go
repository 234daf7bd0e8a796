package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	appcatalog "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	scope := NewGormTransactionScope(db)

	var productID int64
	err := scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
		p := catalog.NewProduct()
		p.Overwrite("Phone", "Electronics", nil)
		if err := repos.ProductRepo().Save(ctx, p); err != nil {
			return err
		}
		productID = p.ID
		return repos.CategoryRepo().Save(ctx, &catalog.Category{Type: "Electronics", ProductIDs: []int64{p.ID}})
	})
	require.NoError(t, err)

	found, err := NewGormProductRepository(db).FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Len(t, found.Categories, 1)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	scope := NewGormTransactionScope(db)

	boom := errors.New("boom")
	err := scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
		if err := repos.CategoryRepo().Save(ctx, &catalog.Category{Type: "Electronics"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := NewGormCategoryRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGormTransactionScope_ExecuteReadOnly(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, NewGormCategoryRepository(db).Save(ctx, &catalog.Category{Type: "Books"}))

	var categories []catalog.Category
	err := NewGormTransactionScope(db).ExecuteReadOnly(ctx, func(repos appcatalog.TransactionalRepositories) error {
		var err error
		categories, err = repos.CategoryRepo().FindAll(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestGormTransactionScope_ReadOnlyOptionBeginsTransaction(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	scope := NewGormTransactionScope(db.DB, WithReadOnlyTransactions(true))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}))
	mock.ExpectQuery(`SELECT \* FROM "product_category" ORDER BY product_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "category_id"}))
	mock.ExpectCommit()

	err := scope.ExecuteReadOnly(context.Background(), func(repos appcatalog.TransactionalRepositories) error {
		_, err := repos.CategoryRepo().FindAll(context.Background())
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
