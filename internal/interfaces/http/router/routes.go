package router

import (
	"github.com/catalog/backend/internal/interfaces/http/handler"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CatalogRoutes returns the catalog API: every operation under
// /product_catalog, plus the write operations at the root paths
// (/product, /product/:productId, /category, ...).
func CatalogRoutes(h *handler.CatalogHandler) []RouteRegistrar {
	catalog := NewDomainGroup("catalog", "/product_catalog")
	catalog.GET("", h.ListProducts)
	registerWrites(catalog, h)
	catalog.GET("/product/:productId", h.GetProduct).
		DELETE("/product/:productId", h.DeleteProduct).
		GET("/category", h.ListCategories).
		GET("/category/:categoryId", h.GetCategory).
		DELETE("/category/:categoryId", h.DeleteCategory)

	root := NewDomainGroup("catalog-root", "")
	registerWrites(root, h)

	return []RouteRegistrar{catalog, root}
}

func registerWrites(g *DomainGroup, h *handler.CatalogHandler) {
	g.POST("/product", h.CreateProduct).
		PUT("/product/:productId", h.UpdateProduct).
		POST("/product/:productId/review", h.AddReview).
		POST("/category", h.CreateCategory).
		POST("/product/:productId/category", h.AttachCategory)
}

// SystemRoutes returns /health and the /system endpoints
func SystemRoutes(h *handler.SystemHandler) []RouteRegistrar {
	root := NewDomainGroup("health", "")
	root.GET("/health", h.Health)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.GetSystemInfo).
		GET("/ping", h.Ping)

	return []RouteRegistrar{root, system}
}

// SwaggerRoutes serves the registered API documentation at
// /swagger/index.html and /swagger/doc.json behind SwaggerProtection.
func SwaggerRoutes(cfg middleware.SwaggerConfig) []RouteRegistrar {
	docs := NewDomainGroup("swagger", "/swagger").Use(middleware.SwaggerProtection(cfg))
	docs.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return []RouteRegistrar{docs}
}
