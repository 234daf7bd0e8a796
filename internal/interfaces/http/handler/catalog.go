package handler

import (
	"fmt"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/infrastructure/logger"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the product catalog API
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CreateProduct godoc
// @Summary      Create a product
// @Description  Create a product. A productId in the body overwrites that product instead; omitted fields are stored empty.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body ProductRequest true "Product record"
// @Success      201 {object} ProductResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/product [post]
// @Router       /product [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	logger.L(c.Request.Context()).Info("Received request to create a product",
		zap.String("title", req.Title),
		zap.String("type", req.Type),
	)

	product, err := h.catalogService.UpsertProduct(c.Request.Context(), req.toData())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toProductResponse(product))
}

// UpdateProduct godoc
// @Summary      Overwrite a product
// @Description  Replace every field of the product. The path id wins over any id in the body.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productId path int true "Product ID" minimum(1)
// @Param        request body ProductRequest true "Product record"
// @Success      200 {object} ProductResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/product/{productId} [put]
// @Router       /product/{productId} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "productId")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.ProductID = &productID

	logger.L(c.Request.Context()).Info("Updating product", zap.Int64("product_id", productID))

	product, err := h.catalogService.UpsertProduct(c.Request.Context(), req.toData())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, toProductResponse(product))
}

// AddReview godoc
// @Summary      Add or replace a review
// @Description  Create a review of the product, or overwrite an existing review the product owns.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        productId path int true "Product ID" minimum(1)
// @Param        request body ReviewRequest true "Review record"
// @Success      201 {object} ReviewResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/product/{productId}/review [post]
// @Router       /product/{productId}/review [post]
func (h *CatalogHandler) AddReview(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "productId")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	logger.L(c.Request.Context()).Info("Adding review to product", zap.Int64("product_id", productID))

	review, err := h.catalogService.UpsertReview(c.Request.Context(), productID, req.toData())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toReviewResponse(review))
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Create a category, or rename an existing one. Category types are unique.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CategoryRequest true "Category record"
// @Success      201 {object} CategoryResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/category [post]
// @Router       /category [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	logger.L(c.Request.Context()).Info("Received request to create a category", zap.String("type", req.Type))

	category, err := h.catalogService.UpsertCategory(c.Request.Context(), req.toData())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toCategoryResponse(category))
}

// AttachCategory godoc
// @Summary      Attach a category to a product
// @Description  Create or update a category and link it to the product. A category linked to another product is rejected.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        productId path int true "Product ID" minimum(1)
// @Param        request body CategoryRequest true "Category record"
// @Success      201 {object} CategoryResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/product/{productId}/category [post]
// @Router       /product/{productId}/category [post]
func (h *CatalogHandler) AttachCategory(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "productId")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	logger.L(c.Request.Context()).Info("Adding category to product",
		zap.Int64("product_id", productID),
		zap.String("type", req.Type),
	)

	category, err := h.catalogService.AttachCategoryToProduct(c.Request.Context(), productID, req.toData())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toCategoryResponse(category))
}

// ListProducts godoc
// @Summary      List products
// @Description  Every product, without reviews or categories.
// @Tags         products
// @Produce      json
// @Success      200 {array} ProductResponse
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	h.OK(c, resp)
}

// GetProduct godoc
// @Summary      Get a product
// @Description  A product with its reviews and categories.
// @Tags         products
// @Produce      json
// @Param        productId path int true "Product ID" minimum(1)
// @Success      200 {object} ProductResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/product/{productId} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "productId")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, toProductResponse(product))
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Description  Delete the product and its reviews. Linked categories remain.
// @Tags         products
// @Produce      json
// @Param        productId path int true "Product ID" minimum(1)
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/product/{productId} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	productID, ok := h.parseIDParam(c, "productId")
	if !ok {
		return
	}

	logger.L(c.Request.Context()).Info("Deleting product", zap.Int64("product_id", productID))

	if err := h.catalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.MessageResponse{Message: fmt.Sprintf("Deletion of Product with ID=%d was successful.", productID)})
}

// GetCategory godoc
// @Summary      Get a category
// @Description  A single category.
// @Tags         categories
// @Produce      json
// @Param        categoryId path int true "Category ID" minimum(1)
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/category/{categoryId} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	categoryID, ok := h.parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.catalogService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, toCategoryResponse(category))
}

// ListCategories godoc
// @Summary      List categories
// @Description  Every category.
// @Tags         categories
// @Produce      json
// @Success      200 {array} CategoryResponse
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/category [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, toCategoryResponse(&categories[i]))
	}
	h.OK(c, resp)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Delete the category. Linked products remain.
// @Tags         categories
// @Produce      json
// @Param        categoryId path int true "Category ID" minimum(1)
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /product_catalog/category/{categoryId} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := h.parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	logger.L(c.Request.Context()).Info("Deleting category", zap.Int64("category_id", categoryID))

	if err := h.catalogService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.MessageResponse{Message: fmt.Sprintf("Deletion of Category with ID=%d was successful.", categoryID)})
}
