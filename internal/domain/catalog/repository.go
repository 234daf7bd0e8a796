package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID loads a product together with its reviews and categories.
	// Returns shared.ErrNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll loads every product without associations
	FindAll(ctx context.Context) ([]Product, error)

	// Save inserts or fully overwrites the product's scalar fields and
	// assigns the ID of a new product
	Save(ctx context.Context, product *Product) error

	// Delete removes the product, its reviews and its category links
	Delete(ctx context.Context, product *Product) error
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	FindByID(ctx context.Context, id int64) (*Review, error)
	FindAll(ctx context.Context) ([]Review, error)
	Save(ctx context.Context, review *Review) error
	Delete(ctx context.Context, review *Review) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID loads a category together with its linked product IDs
	FindByID(ctx context.Context, id int64) (*Category, error)

	// FindAll loads every category with its linked product IDs
	FindAll(ctx context.Context) ([]Category, error)

	// Save persists the type and inserts any missing product links.
	// A duplicate type yields shared.ErrUniquenessViolation.
	Save(ctx context.Context, category *Category) error

	// Delete removes the category and its product links; products are kept
	Delete(ctx context.Context, category *Category) error
}
