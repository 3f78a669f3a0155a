package handlers

import (
	"net/http"
	"time"

	"freshcart/internal/auth"
	"freshcart/internal/models"
	"freshcart/internal/services"

	"github.com/gin-gonic/gin"
)

type RiderHandler struct {
	dispatchService  services.DispatchService
	lifecycleService services.LifecycleService
}

func NewRiderHandler(dispatchService services.DispatchService, lifecycleService services.LifecycleService) *RiderHandler {
	return &RiderHandler{dispatchService: dispatchService, lifecycleService: lifecycleService}
}

func (h *RiderHandler) ListAvailableDeliveries(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	deliveries, err := h.dispatchService.ListAvailable(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

func (h *RiderHandler) ListAssignedDeliveries(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	deliveries, err := h.dispatchService.ListAssigned(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

func (h *RiderHandler) AcceptDelivery(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	deliveryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.dispatchService.Accept(c.Request.Context(), principal.ID, deliveryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type estimatedTimeRequest struct {
	EstimatedTime time.Time `json:"estimated_time" binding:"required"`
}

func (h *RiderHandler) SetEstimatedTime(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	deliveryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req estimatedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.lifecycleService.SetEstimatedTime(deliveryID, principal.ID, req.EstimatedTime); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "estimated_time_set"})
}

func (h *RiderHandler) StartDelivery(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	deliveryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lifecycleService.StartDelivery(c.Request.Context(), deliveryID, principal.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "out_for_delivery"})
}

func (h *RiderHandler) MarkArrival(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	deliveryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lifecycleService.MarkArrival(c.Request.Context(), deliveryID, principal.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "arrived"})
}

func (h *RiderHandler) ConfirmPayment(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lifecycleService.ConfirmPayment(c.Request.Context(), orderID, principal.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "delivered"})
}

func (h *RiderHandler) MarkFailed(c *gin.Context) {
	principal, _ := auth.FromContext(c)
	deliveryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lifecycleService.MarkFailed(c.Request.Context(), deliveryID, principal.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "failed"})
}

type zoneRequest struct {
	Zone models.Zone `json:"zone" binding:"required"`
}

func (h *RiderHandler) UpdateZone(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.dispatchService.UpdateZone(principal.ID, req.Zone); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "zone_updated", "zone": req.Zone})
}
