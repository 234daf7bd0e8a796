package catalog

import (
	"sort"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. It exclusively owns its Reviews and shares
// Categories with other products through the product_category relation.
type Product struct {
	ID         int64
	Title      string
	Type       string
	Price      *decimal.Decimal
	Reviews    []Review
	Categories []Category
}

// NewProduct returns a blank product that receives its ID on first save
func NewProduct() *Product {
	return &Product{}
}

// IsNew reports whether the product has not been persisted yet
func (p *Product) IsNew() bool {
	return p.ID == 0
}

// Overwrite replaces every scalar field. Omitted values clear the field.
func (p *Product) Overwrite(title, productType string, price *decimal.Decimal) {
	p.Title = title
	p.Type = productType
	if price == nil {
		p.Price = nil
		return
	}
	v := *price
	p.Price = &v
}

// AddReview adds the review to the product's review set, replacing an
// existing entry with the same ID.
func (p *Product) AddReview(review Review) {
	for i := range p.Reviews {
		if review.ID != 0 && p.Reviews[i].ID == review.ID {
			p.Reviews[i] = review
			return
		}
	}
	p.Reviews = append(p.Reviews, review)
}

// AddCategory links the category to the product's category set
func (p *Product) AddCategory(category Category) {
	for i := range p.Categories {
		if category.ID != 0 && p.Categories[i].ID == category.ID {
			p.Categories[i] = category
			return
		}
	}
	p.Categories = append(p.Categories, category)
}

// SortAssociations orders reviews and categories by ID so that set-valued
// collections render deterministically.
func (p *Product) SortAssociations() {
	sort.Slice(p.Reviews, func(i, j int) bool { return p.Reviews[i].ID < p.Reviews[j].ID })
	sort.Slice(p.Categories, func(i, j int) bool { return p.Categories[i].ID < p.Categories[j].ID })
}

// ProductNotFound is returned when no product has the given ID
func ProductNotFound(id int64) error {
	return shared.NotFoundf("Product with ID=%d does not exist.", id)
}
