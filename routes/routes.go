package routes

import (
	"time"

	"storefront-backend/controllers"
	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers wired into the router.
type Controllers struct {
	Orders   *controllers.OrderController
	Products *controllers.ProductController
	Reviews  *controllers.ReviewController
}

// Register sets up the /api routes. checkoutMax caps checkout attempts
// per IP per window, stricter than the global limit.
func Register(r *gin.Engine, c Controllers, checkoutMax int, window time.Duration) {
	api := r.Group("/api")

	api.GET("/products", c.Products.GetProducts)
	api.GET("/products/:slug", c.Products.GetProductBySlug)

	api.GET("/reviews", c.Reviews.GetReviews)
	api.POST("/reviews", c.Reviews.CreateReview)
	api.DELETE("/reviews/:id", c.Reviews.DeleteReview)

	api.POST("/orders", c.Orders.CreateOrder)
	api.GET("/orders/:reference", c.Orders.GetOrderByReference)

	checkout := api.Group("/checkout")
	checkout.Use(middleware.RateLimitPerWindow(checkoutMax, window))
	checkout.POST("/create-whatsapp", c.Orders.CreateWhatsAppCheckout)
}
