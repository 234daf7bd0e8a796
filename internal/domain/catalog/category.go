package catalog

import "github.com/catalog/backend/internal/domain/shared"

// Category groups products. Type is unique across all categories.
// ProductIDs holds the current reverse association as stored in the
// product_category relation.
type Category struct {
	ID         int64
	Type       string
	ProductIDs []int64
}

// NewCategory returns a blank category that receives its ID on first save
func NewCategory() *Category {
	return &Category{}
}

// IsNew reports whether the category has not been persisted yet
func (c *Category) IsNew() bool {
	return c.ID == 0
}

// Overwrite replaces the category type
func (c *Category) Overwrite(categoryType string) {
	c.Type = categoryType
}

// CheckOwner fails if any product currently linked to the category differs
// from productID. A category with no linked products passes.
func (c *Category) CheckOwner(productID int64) error {
	for _, id := range c.ProductIDs {
		if id != productID {
			return shared.OwnershipViolationf("Category with ID=%d does not belong to product with ID=%d.", c.ID, productID)
		}
	}
	return nil
}

// HasProduct reports whether productID is linked to the category
func (c *Category) HasProduct(productID int64) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// LinkProduct adds productID to the reverse association if missing
func (c *Category) LinkProduct(productID int64) {
	if c.HasProduct(productID) {
		return
	}
	c.ProductIDs = append(c.ProductIDs, productID)
}

// CategoryNotFound is returned when no category has the given ID
func CategoryNotFound(id int64) error {
	return shared.NotFoundf("Category with ID=%d does not exist.", id)
}
