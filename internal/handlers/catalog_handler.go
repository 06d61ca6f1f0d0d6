package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/khadamat/backend/internal/service"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	list := make([]serviceResponse, 0, len(services))
	for i := range services {
		list = append(list, newServiceResponse(&services[i], h.catalog.Currency()))
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newServiceResponse(svc, h.catalog.Currency()))
}

// CalculateCost previews a cost without creating an order; no auth needed.
func (h *CatalogHandler) CalculateCost(c *gin.Context) {
	rawID := c.Query("service_id")
	rawQuantity := c.Query("quantity")
	if rawID == "" || rawQuantity == "" {
		RespondError(c, http.StatusBadRequest, "service_id and quantity are required")
		return
	}
	serviceID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid service_id")
		return
	}
	preview, err := h.catalog.PreviewCost(c.Request.Context(), uint(serviceID), rawQuantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service":  newServiceResponse(preview.Service, preview.Currency),
		"quantity": preview.Quantity.StringFixed(2),
		"cost":     preview.Cost.StringFixed(2),
		"currency": preview.Currency,
	})
}
