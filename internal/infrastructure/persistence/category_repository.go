package persistence

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID together with its linked product IDs
func (r *GormCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.CategoryNotFound(id)
		}
		return nil, err
	}

	category := model.ToDomain()
	if err := r.db.WithContext(ctx).
		Model(&models.ProductCategoryModel{}).
		Where("category_id = ?", id).
		Order("product_id ASC").
		Pluck("product_id", &category.ProductIDs).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// FindAll returns every category ordered by ID with its linked product IDs
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var rows []models.CategoryModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	var links []models.ProductCategoryModel
	if err := r.db.WithContext(ctx).Order("product_id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	byCategory := make(map[int64][]int64, len(rows))
	for _, link := range links {
		byCategory[link.CategoryID] = append(byCategory[link.CategoryID], link.ProductID)
	}

	categories := make([]catalog.Category, 0, len(rows))
	for i := range rows {
		category := rows[i].ToDomain()
		category.ProductIDs = byCategory[category.ID]
		categories = append(categories, *category)
	}
	return categories, nil
}

// Save persists the category type and inserts any product link not yet
// stored. Existing links are never removed here.
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	var model models.CategoryModel
	model.FromDomain(category)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.UniquenessViolationf("Category with type %q already exists.", category.Type)
		}
		return err
	}
	category.ID = model.ID

	if len(category.ProductIDs) == 0 {
		return nil
	}
	links := make([]models.ProductCategoryModel, 0, len(category.ProductIDs))
	for _, productID := range category.ProductIDs {
		links = append(links, models.ProductCategoryModel{ProductID: productID, CategoryID: category.ID})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

// Delete removes the category and its product links
func (r *GormCategoryRepository) Delete(ctx context.Context, category *catalog.Category) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("category_id = ?", category.ID).Delete(&models.ProductCategoryModel{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.CategoryModel{}, "id = ?", category.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.CategoryNotFound(category.ID)
	}
	return nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
