package controllers

import (
	"net/http"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for checkout and order lookup.
type OrderController struct {
	checkoutService services.CheckoutService
	orderService    services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(checkoutService services.CheckoutService, orderService services.OrderService) *OrderController {
	return &OrderController{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// CreateWhatsAppCheckout handles POST /api/checkout/create-whatsapp.
func (oc *OrderController) CreateWhatsAppCheckout(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, svcErr := oc.checkoutService.Checkout(ctx.Request.Context(), &req, ctx.Request.UserAgent())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /api/orders.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data", "details": err.Error()})
		return
	}

	resp, svcErr := oc.checkoutService.CreateOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetOrderByReference handles GET /api/orders/:reference.
func (oc *OrderController) GetOrderByReference(ctx *gin.Context) {
	reference := ctx.Param("reference")
	if reference == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Order reference is required"})
		return
	}

	order, svcErr := oc.orderService.GetOrderByReference(ctx.Request.Context(), reference)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
