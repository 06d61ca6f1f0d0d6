package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khadamat/backend/internal/middleware"
	"github.com/khadamat/backend/internal/service"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders   *service.OrderService
	currency string
	log      *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, currency string, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, currency: currency, log: log}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	list := make([]orderResponse, 0, len(orders))
	for i := range orders {
		list = append(list, newOrderResponse(&orders[i], h.currency))
	}
	c.JSON(http.StatusOK, list)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order, h.currency))
}

type checkoutRequest struct {
	ServiceID             uint   `json:"service_id"`
	Quantity              string `json:"quantity"`
	Location              string `json:"location"`
	PaymentMethod         string `json:"payment_method"`
	Notes                 string `json:"notes"`
	DeliveryCost          string `json:"delivery_cost"`
	EstimatedDeliveryTime *int   `json:"estimated_delivery_time"`
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.orders.Checkout(c.Request.Context(), middleware.UserID(c), service.CheckoutInput{
		ServiceID:             req.ServiceID,
		Quantity:              req.Quantity,
		Location:              req.Location,
		PaymentMethod:         req.PaymentMethod,
		Notes:                 req.Notes,
		DeliveryCost:          req.DeliveryCost,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   newOrderResponse(order, h.currency),
	})
}

func (h *OrderHandler) Track(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tracking, err := h.orders.Track(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTrackingResponse(tracking))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order, h.currency))
}
