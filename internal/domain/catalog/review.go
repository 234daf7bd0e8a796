package catalog

import "github.com/catalog/backend/internal/domain/shared"

// Review belongs to exactly one product, referenced by ProductID
type Review struct {
	ID        int64
	ProductID int64
	Rating    *int64
	Comment   string
}

// NewReview returns a blank review that receives its ID on first save
func NewReview() *Review {
	return &Review{}
}

// IsNew reports whether the review has not been persisted yet
func (r *Review) IsNew() bool {
	return r.ID == 0
}

// Overwrite replaces rating and comment. Omitted values clear the field.
func (r *Review) Overwrite(rating *int64, comment string) {
	if rating == nil {
		r.Rating = nil
	} else {
		v := *rating
		r.Rating = &v
	}
	r.Comment = comment
}

// CheckOwner fails unless the review is recorded against productID
func (r *Review) CheckOwner(productID int64) error {
	if r.ProductID != productID {
		return shared.OwnershipViolationf("Review with ID=%d does not belong to product with ID=%d.", r.ID, productID)
	}
	return nil
}

// AssignTo sets the owning product
func (r *Review) AssignTo(productID int64) {
	r.ProductID = productID
}

// ReviewNotFound is returned when no review has the given ID
func ReviewNotFound(id int64) error {
	return shared.NotFoundf("Review with ID=%d does not exist.", id)
}
