package persistence

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID and loads its reviews and categories
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ProductNotFound(id)
		}
		return nil, err
	}
	product := model.ToDomain()

	var reviews []models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", id).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	for i := range reviews {
		product.AddReview(*reviews[i].ToDomain())
	}

	var categories []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_category ON product_category.category_id = categories.id").
		Where("product_category.product_id = ?", id).
		Order("categories.id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		product.AddCategory(*categories[i].ToDomain())
	}

	return product, nil
}

// FindAll returns every product ordered by ID, without associations
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var rows []models.ProductModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// Save inserts a new product or overwrites every column of an existing one
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	var model models.ProductModel
	model.FromDomain(product)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	product.ID = model.ID
	return nil
}

// Delete removes the product together with its reviews and category links
func (r *GormProductRepository) Delete(ctx context.Context, product *catalog.Product) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", product.ID).Delete(&models.ReviewModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", product.ID).Delete(&models.ProductCategoryModel{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.ProductModel{}, "id = ?", product.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ProductNotFound(product.ID)
	}
	return nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
