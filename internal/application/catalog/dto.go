package catalog

import (
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductData is the incoming product record. A nil ProductID creates a new
// product; every other field fully replaces the stored value.
type ProductData struct {
	ProductID *int64
	Title     string
	Type      string
	Price     *decimal.Decimal
}

// ReviewData is the incoming review record
type ReviewData struct {
	ReviewID *int64
	Rating   *int64
	Comment  string
}

// CategoryData is the incoming category record
type CategoryData struct {
	CategoryID *int64
	Type       string
}

// ProductResponse is the external product record
type ProductResponse struct {
	ProductID  int64              `json:"productId"`
	Title      string             `json:"title"`
	Type       string             `json:"type"`
	Price      *decimal.Decimal   `json:"price"`
	Reviews    []ReviewResponse   `json:"reviews"`
	Categories []CategoryResponse `json:"categories"`
}

// ReviewResponse is the external review record
type ReviewResponse struct {
	ReviewID int64  `json:"reviewId"`
	Rating   *int64 `json:"rating"`
	Comment  string `json:"comment"`
}

// CategoryResponse is the external category record
type CategoryResponse struct {
	CategoryID int64  `json:"categoryId"`
	Type       string `json:"type"`
}

// ToProductResponse converts a domain Product, including its associations,
// to a response. Collections are never nil.
func ToProductResponse(p *catalog.Product) ProductResponse {
	p.SortAssociations()

	reviews := make([]ReviewResponse, 0, len(p.Reviews))
	for i := range p.Reviews {
		reviews = append(reviews, ToReviewResponse(&p.Reviews[i]))
	}
	categories := make([]CategoryResponse, 0, len(p.Categories))
	for i := range p.Categories {
		categories = append(categories, ToCategoryResponse(&p.Categories[i]))
	}

	return ProductResponse{
		ProductID:  p.ID,
		Title:      p.Title,
		Type:       p.Type,
		Price:      p.Price,
		Reviews:    reviews,
		Categories: categories,
	}
}

// ToProductSummary converts a domain Product to a response with empty
// review and category collections.
func ToProductSummary(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ID,
		Title:      p.Title,
		Type:       p.Type,
		Price:      p.Price,
		Reviews:    []ReviewResponse{},
		Categories: []CategoryResponse{},
	}
}

// ToReviewResponse converts a domain Review to a response
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID: r.ID,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

// ToCategoryResponse converts a domain Category to a response
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.ID,
		Type:       c.Type,
	}
}
