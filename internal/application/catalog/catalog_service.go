package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// CatalogService manages products, their reviews and their categories.
// Every method runs in exactly one transaction obtained from the scope.
type CatalogService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(txScope TransactionScope, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		txScope: txScope,
		logger:  logger,
	}
}

// findOrCreate returns a blank entity when id is nil and loads the stored
// entity otherwise, failing with the repository's not-found error.
func findOrCreate[T any](ctx context.Context, id *int64, find func(context.Context, int64) (*T, error), create func() *T) (*T, error) {
	if id == nil {
		return create(), nil
	}
	return find(ctx, *id)
}

// UpsertProduct creates a product, or fully overwrites an existing one, and
// returns the saved record with its reviews and categories.
func (s *CatalogService) UpsertProduct(ctx context.Context, req ProductData) (*ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "upsert_product")
	defer span.End()

	var result ProductResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		products := repos.ProductRepo()

		product, err := findOrCreate(ctx, req.ProductID, products.FindByID, catalog.NewProduct)
		if err != nil {
			return err
		}
		product.Overwrite(req.Title, req.Type, req.Price)

		if err := products.Save(ctx, product); err != nil {
			return err
		}

		saved, err := products.FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		result = ToProductResponse(saved)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrProductID, result.ProductID)
	s.logger.Info("Product saved", zap.Int64("product_id", result.ProductID))
	return &result, nil
}

// UpsertReview creates or replaces a review of an existing product. A review
// ID that belongs to another product is rejected.
func (s *CatalogService) UpsertReview(ctx context.Context, productID int64, req ReviewData) (*ReviewResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "upsert_review",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID),
	)
	defer span.End()

	var result ReviewResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		review, err := findOrCreate(ctx, req.ReviewID, repos.ReviewRepo().FindByID, catalog.NewReview)
		if err != nil {
			return err
		}
		if !review.IsNew() {
			if err := review.CheckOwner(product.ID); err != nil {
				return err
			}
		}

		review.Overwrite(req.Rating, req.Comment)
		review.AssignTo(product.ID)

		if err := repos.ReviewRepo().Save(ctx, review); err != nil {
			return err
		}

		result = ToReviewResponse(review)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrReviewID, result.ReviewID)
	s.logger.Info("Review saved",
		zap.Int64("product_id", productID),
		zap.Int64("review_id", result.ReviewID),
	)
	return &result, nil
}

// UpsertCategory creates or renames a category without touching its
// product links. A duplicate type fails with a uniqueness violation.
func (s *CatalogService) UpsertCategory(ctx context.Context, req CategoryData) (*CategoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "upsert_category")
	defer span.End()

	var result CategoryResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		categories := repos.CategoryRepo()

		category, err := findOrCreate(ctx, req.CategoryID, categories.FindByID, catalog.NewCategory)
		if err != nil {
			return err
		}
		category.Overwrite(req.Type)

		if err := categories.Save(ctx, category); err != nil {
			return err
		}
		result = ToCategoryResponse(category)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Category saved", zap.Int64("category_id", result.CategoryID))
	return &result, nil
}

// AttachCategoryToProduct creates or updates a category and links it to the
// product in both directions. An existing category must not be linked to any
// other product; one with no links at all is accepted.
func (s *CatalogService) AttachCategoryToProduct(ctx context.Context, productID int64, req CategoryData) (*CategoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "attach_category",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID),
	)
	defer span.End()

	var result CategoryResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		category, err := findOrCreate(ctx, req.CategoryID, repos.CategoryRepo().FindByID, catalog.NewCategory)
		if err != nil {
			return err
		}
		if err := category.CheckOwner(product.ID); err != nil {
			return err
		}

		category.Overwrite(req.Type)
		category.LinkProduct(product.ID)

		if err := repos.CategoryRepo().Save(ctx, category); err != nil {
			return err
		}

		result = ToCategoryResponse(category)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Category attached to product",
		zap.Int64("product_id", productID),
		zap.Int64("category_id", result.CategoryID),
	)
	return &result, nil
}

// ListProducts returns every product with empty review and category sets
func (s *CatalogService) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "list_products")
	defer span.End()

	var result []ProductResponse
	err := s.txScope.ExecuteReadOnly(ctx, func(repos TransactionalRepositories) error {
		products, err := repos.ProductRepo().FindAll(ctx)
		if err != nil {
			return err
		}
		result = make([]ProductResponse, 0, len(products))
		for i := range products {
			result = append(result, ToProductSummary(&products[i]))
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}

// GetProduct returns a product with its reviews and categories
func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "get_product",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID),
	)
	defer span.End()

	var result ProductResponse
	err := s.txScope.ExecuteReadOnly(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}
		result = ToProductResponse(product)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &result, nil
}

// DeleteProduct removes a product and its reviews. Linked categories remain.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "delete_product",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID),
	)
	defer span.End()

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}
		return repos.ProductRepo().Delete(ctx, product)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	s.logger.Info("Product deleted", zap.Int64("product_id", productID))
	return nil
}

// DeleteCategory removes a category. Linked products remain.
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "delete_category",
		telemetry.WithAttribute(telemetry.SpanAttrCategoryID, categoryID),
	)
	defer span.End()

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		category, err := repos.CategoryRepo().FindByID(ctx, categoryID)
		if err != nil {
			return err
		}
		return repos.CategoryRepo().Delete(ctx, category)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	s.logger.Info("Category deleted", zap.Int64("category_id", categoryID))
	return nil
}

// GetCategory returns a single category
func (s *CatalogService) GetCategory(ctx context.Context, categoryID int64) (*CategoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "get_category",
		telemetry.WithAttribute(telemetry.SpanAttrCategoryID, categoryID),
	)
	defer span.End()

	var result CategoryResponse
	err := s.txScope.ExecuteReadOnly(ctx, func(repos TransactionalRepositories) error {
		category, err := repos.CategoryRepo().FindByID(ctx, categoryID)
		if err != nil {
			return err
		}
		result = ToCategoryResponse(category)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &result, nil
}

// ListCategories returns every category
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "list_categories")
	defer span.End()

	var result []CategoryResponse
	err := s.txScope.ExecuteReadOnly(ctx, func(repos TransactionalRepositories) error {
		categories, err := repos.CategoryRepo().FindAll(ctx)
		if err != nil {
			return err
		}
		result = make([]CategoryResponse, 0, len(categories))
		for i := range categories {
			result = append(result, ToCategoryResponse(&categories[i]))
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}
