package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
)

// TransactionScope runs catalog operations atomically. All repositories
// handed to fn share one database transaction, which is rolled back when fn
// returns an error and committed otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error

	// ExecuteReadOnly is Execute for operations that perform no writes
	ExecuteReadOnly(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the catalog repositories bound to the
// current transaction.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	ReviewRepo() catalog.ReviewRepository
	CategoryRepo() catalog.CategoryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing with in-memory or mocked repositories.
type NoOpTransactionScope struct {
	productRepo  catalog.ProductRepository
	reviewRepo   catalog.ReviewRepository
	categoryRepo catalog.CategoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	reviewRepo catalog.ReviewRepository,
	categoryRepo catalog.CategoryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ExecuteReadOnly runs the function without a real transaction
func (s *NoOpTransactionScope) ExecuteReadOnly(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

func (s *NoOpTransactionScope) ReviewRepo() catalog.ReviewRepository {
	return s.reviewRepo
}

func (s *NoOpTransactionScope) CategoryRepo() catalog.CategoryRepository {
	return s.categoryRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
