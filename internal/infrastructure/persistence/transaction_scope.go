package persistence

import (
	"context"
	"database/sql"

	appcatalog "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db         *gorm.DB
	readOnlyTx bool
}

// TransactionScopeOption configures a GormTransactionScope
type TransactionScopeOption func(*GormTransactionScope)

// WithReadOnlyTransactions makes ExecuteReadOnly begin its transaction with
// the READ ONLY access mode.
func WithReadOnlyTransactions(enabled bool) TransactionScopeOption {
	return func(s *GormTransactionScope) {
		s.readOnlyTx = enabled
	}
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB, opts ...TransactionScopeOption) *GormTransactionScope {
	s := &GormTransactionScope{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise it is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// ExecuteReadOnly runs fn within a transaction that performs no writes
func (s *GormTransactionScope) ExecuteReadOnly(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	var opts []*sql.TxOptions
	if s.readOnlyTx {
		opts = append(opts, &sql.TxOptions{ReadOnly: true})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	}, opts...)
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) ReviewRepo() catalog.ReviewRepository {
	return NewGormReviewRepository(r.tx)
}

func (r *gormTransactionalRepositories) CategoryRepo() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

var _ appcatalog.TransactionScope = (*GormTransactionScope)(nil)
var _ appcatalog.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
