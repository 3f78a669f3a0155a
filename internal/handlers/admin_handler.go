package handlers

import (
	"net/http"

	"freshcart/internal/auth"
	"freshcart/internal/models"
	"freshcart/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	orderService services.OrderService
}

func NewAdminHandler(orderService services.OrderService) *AdminHandler {
	return &AdminHandler{orderService: orderService}
}

// RestoreStock is the explicit admin confirmation that cancelled goods came
// back from a rider. Calling it twice on the same order returns Conflict.
func (h *AdminHandler) RestoreStock(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.RestoreStock(c.Request.Context(), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "restored"})
}

func (h *AdminHandler) CancelOrder(c *gin.Context) {
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

func (h *AdminHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		orders, err := h.orderService.GetAllOrders()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := h.orderService.GetOrdersByStatus(models.OrderStatus(status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
