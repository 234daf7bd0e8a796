package models

import (
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	ID    int64               `gorm:"primaryKey;autoIncrement"`
	Title string              `gorm:"type:varchar(255)"`
	Type  string              `gorm:"type:varchar(255)"`
	Price decimal.NullDecimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product without associations.
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		ID:    m.ID,
		Title: m.Title,
		Type:  m.Type,
	}
	if m.Price.Valid {
		price := m.Price.Decimal
		p.Price = &price
	}
	return p
}

// FromDomain populates the persistence model from a domain Product.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID
	m.Title = p.Title
	m.Type = p.Type
	m.Price = decimal.NullDecimal{}
	if p.Price != nil {
		m.Price = decimal.NewNullDecimal(*p.Price)
	}
}

// ReviewModel is the persistence model for the Review domain entity.
type ReviewModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index"`
	Rating    *int64 `gorm:"column:rating"`
	Comment   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review.
func (m *ReviewModel) ToDomain() *catalog.Review {
	return &catalog.Review{
		ID:        m.ID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
	}
}

// FromDomain populates the persistence model from a domain Review.
func (m *ReviewModel) FromDomain(r *catalog.Review) {
	m.ID = r.ID
	m.ProductID = r.ProductID
	m.Rating = r.Rating
	m.Comment = r.Comment
}

// CategoryModel is the persistence model for the Category domain entity.
// Type carries the unique index that backs the uniqueness rule.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_type"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category. Product
// links are attached by the repository.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		ID:   m.ID,
		Type: m.Type,
	}
}

// FromDomain populates the persistence model from a domain Category.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.ID = c.ID
	m.Type = c.Type
}

// ProductCategoryModel is one row of the product/category relation.
type ProductCategoryModel struct {
	ProductID  int64 `gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName returns the table name for GORM
func (ProductCategoryModel) TableName() string {
	return "product_category"
}

// AllModels lists every catalog model in dependency order.
func AllModels() []any {
	return []any{
		&ProductModel{},
		&ReviewModel{},
		&CategoryModel{},
		&ProductCategoryModel{},
	}
}
