package controllers

import (
	"net/http"

	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for the catalog.
type ProductController struct {
	productService services.ProductService
	cache          *CacheManager
}

// NewProductController creates a new ProductController. cache may be nil.
func NewProductController(productService services.ProductService, cache *CacheManager) *ProductController {
	return &ProductController{productService: productService, cache: cache}
}

// GetProducts handles GET /api/products.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	if products, ok := pc.cache.GetProductList(ctx.Request.Context()); ok {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "products": products})
		return
	}

	products, svcErr := pc.productService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pc.cache.SetProductListAsync(products)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// GetProductBySlug handles GET /api/products/:slug.
func (pc *ProductController) GetProductBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Product slug is required"})
		return
	}

	if product, ok := pc.cache.GetProduct(ctx.Request.Context(), slug); ok {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "product": product})
		return
	}

	product, svcErr := pc.productService.GetProductBySlug(ctx.Request.Context(), slug)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pc.cache.SetProductAsync(product)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}
