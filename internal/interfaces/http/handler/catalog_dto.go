package handler

import (
	catalogapp "github.com/catalog/backend/internal/application/catalog"
)

// ProductRequest is the product record accepted by create and update.
// Omitted fields are stored as empty (or null for price). Price must fit the
// products.price column, DECIMAL(18,4).
type ProductRequest struct {
	ProductID *int64   `json:"productId" example:"1"`
	Title     string   `json:"title" binding:"max=255" example:"Espresso Machine"`
	Type      string   `json:"type" binding:"max=255" example:"Kitchen"`
	Price     *float64 `json:"price" binding:"omitempty,gt=-1e14,lt=1e14" example:"249.99"`
}

// ReviewRequest is the review record accepted by add/replace review
type ReviewRequest struct {
	ReviewID *int64 `json:"reviewId" example:"3"`
	Rating   *int64 `json:"rating" example:"5"`
	Comment  string `json:"comment" example:"Makes great coffee"`
}

// CategoryRequest is the category record accepted by create and attach
type CategoryRequest struct {
	CategoryID *int64 `json:"categoryId" example:"2"`
	Type       string `json:"type" binding:"max=255" example:"Appliances"`
}

// ProductResponse is the product record returned by the API
type ProductResponse struct {
	ProductID  int64              `json:"productId" example:"1"`
	Title      string             `json:"title" example:"Espresso Machine"`
	Type       string             `json:"type" example:"Kitchen"`
	Price      *float64           `json:"price" example:"249.99"`
	Reviews    []ReviewResponse   `json:"reviews"`
	Categories []CategoryResponse `json:"categories"`
}

// ReviewResponse is the review record returned by the API
type ReviewResponse struct {
	ReviewID int64  `json:"reviewId" example:"3"`
	Rating   *int64 `json:"rating" example:"5"`
	Comment  string `json:"comment" example:"Makes great coffee"`
}

// CategoryResponse is the category record returned by the API
type CategoryResponse struct {
	CategoryID int64  `json:"categoryId" example:"2"`
	Type       string `json:"type" example:"Appliances"`
}

func (r ProductRequest) toData() catalogapp.ProductData {
	return catalogapp.ProductData{
		ProductID: r.ProductID,
		Title:     r.Title,
		Type:      r.Type,
		Price:     toDecimalPtr(r.Price),
	}
}

func (r ReviewRequest) toData() catalogapp.ReviewData {
	return catalogapp.ReviewData{
		ReviewID: r.ReviewID,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

func (r CategoryRequest) toData() catalogapp.CategoryData {
	return catalogapp.CategoryData{
		CategoryID: r.CategoryID,
		Type:       r.Type,
	}
}

func toProductResponse(p *catalogapp.ProductResponse) ProductResponse {
	reviews := make([]ReviewResponse, 0, len(p.Reviews))
	for i := range p.Reviews {
		reviews = append(reviews, toReviewResponse(&p.Reviews[i]))
	}
	categories := make([]CategoryResponse, 0, len(p.Categories))
	for i := range p.Categories {
		categories = append(categories, toCategoryResponse(&p.Categories[i]))
	}
	return ProductResponse{
		ProductID:  p.ProductID,
		Title:      p.Title,
		Type:       p.Type,
		Price:      toFloatPtr(p.Price),
		Reviews:    reviews,
		Categories: categories,
	}
}

func toReviewResponse(r *catalogapp.ReviewResponse) ReviewResponse {
	return ReviewResponse{
		ReviewID: r.ReviewID,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

func toCategoryResponse(c *catalogapp.CategoryResponse) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Type:       c.Type,
	}
}
