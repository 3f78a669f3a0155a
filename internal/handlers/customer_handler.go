package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"freshcart/internal/auth"
	"freshcart/internal/redis"
	"freshcart/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	pricingService      services.PricingService
	orderService        services.OrderService
	cartService         services.CartService
	notificationService services.NotificationService
	cache               *redis.Client
	quoteTTL            time.Duration
}

func NewCustomerHandler(
	pricingService services.PricingService,
	orderService services.OrderService,
	cartService services.CartService,
	notificationService services.NotificationService,
	cache *redis.Client,
	quoteTTL time.Duration,
) *CustomerHandler {
	return &CustomerHandler{
		pricingService:      pricingService,
		orderService:        orderService,
		cartService:         cartService,
		notificationService: notificationService,
		cache:               cache,
		quoteTTL:            quoteTTL,
	}
}

type checkoutRequest struct {
	CartID         uint   `json:"cart_id" binding:"required"`
	CouponCode     string `json:"coupon_code"`
	PointsToRedeem int    `json:"points_to_redeem"`
}

// PreviewOrder prices the cart without committing anything.
func (h *CustomerHandler) PreviewOrder(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	quote, err := h.pricingService.PriceCart(principal.ID, req.CartID, req.CouponCode, req.PointsToRedeem)
	if err != nil {
		respondError(c, err)
		return
	}

	// Cache is display-only; placement re-prices regardless.
	if err := h.cache.SetQuote(c.Request.Context(), principal.ID, req.CartID, quote, h.quoteTTL); err != nil {
		log.Printf("Warning: failed to cache quote for cart %d: %v", req.CartID, err)
	}

	c.JSON(http.StatusOK, quote)
}

func (h *CustomerHandler) PlaceOrder(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.orderService.PlaceOrder(c.Request.Context(), principal.ID, req.CartID, req.CouponCode, req.PointsToRedeem)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.cache.DeleteQuote(c.Request.Context(), principal.ID, req.CartID); err != nil {
		log.Printf("Warning: failed to drop cached quote for cart %d: %v", req.CartID, err)
	}

	c.JSON(http.StatusCreated, result)
}

func (h *CustomerHandler) CancelOrder(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.CancelOrder(c.Request.Context(), orderID, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CustomerHandler) GetOrders(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	orders, err := h.orderService.GetOrdersByCustomer(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CustomerHandler) GetOrder(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(orderID, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Cart endpoints

type cartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

func (h *CustomerHandler) GetCart(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	cart, err := h.cartService.GetCart(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CustomerHandler) AddCartItem(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.AddItem(principal.ID, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

func (h *CustomerHandler) UpdateCartItem(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.UpdateItemQuantity(principal.ID, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *CustomerHandler) RemoveCartItem(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(principal.ID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// Notification endpoints

func (h *CustomerHandler) ListNotifications(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	notifications, err := h.notificationService.List(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *CustomerHandler) MarkNotificationRead(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(principal.ID, notificationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func (h *CustomerHandler) MarkAllNotificationsRead(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	if err := h.notificationService.MarkAllRead(principal.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func parseUint(value string) (uint, error) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	return uint(parsed), err
}
