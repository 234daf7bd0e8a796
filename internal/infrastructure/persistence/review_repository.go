package persistence

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id int64) (*catalog.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ReviewNotFound(id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every review ordered by ID
func (r *GormReviewRepository) FindAll(ctx context.Context) ([]catalog.Review, error) {
	var rows []models.ReviewModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	reviews := make([]catalog.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, *rows[i].ToDomain())
	}
	return reviews, nil
}

// Save inserts or overwrites a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	var model models.ReviewModel
	model.FromDomain(review)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	review.ID = model.ID
	return nil
}

// Delete removes a review
func (r *GormReviewRepository) Delete(ctx context.Context, review *catalog.Review) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, "id = ?", review.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ReviewNotFound(review.ID)
	}
	return nil
}

var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
