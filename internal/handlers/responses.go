package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khadamat/backend/internal/models"
	"github.com/khadamat/backend/internal/service"
)

func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// respondServiceError maps service-layer failures onto HTTP statuses.
// Handlers with endpoint-specific messaging (signin) map their own errors
// first and fall back to this.
func respondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		status := http.StatusBadRequest
		if errors.Is(ve.Err, service.ErrDuplicateMobileNumber) {
			status = http.StatusConflict
		}
		c.AbortWithStatusJSON(status, gin.H{"error": ve.Err.Error(), "field": ve.Field})
	case errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidOldPassword),
		errors.Is(err, service.ErrAccountDisabled),
		errors.Is(err, service.ErrBadPassword):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal error")
	}
}

func pathID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(n), true
}

type userResponse struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Username:     u.Username,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
	}
}

type serviceResponse struct {
	ID           uint   `json:"id"`
	ServiceType  string `json:"service_type"`
	NameAr       string `json:"name_ar"`
	NameEn       string `json:"name_en"`
	PricePerUnit string `json:"price_per_unit"`
	UnitName     string `json:"unit_name"`
	UnitNameAr   string `json:"unit_name_ar"`
	Currency     string `json:"currency"`
}

func newServiceResponse(s *models.Service, currency string) serviceResponse {
	return serviceResponse{
		ID:           s.ID,
		ServiceType:  string(s.ServiceType),
		NameAr:       s.NameAr,
		NameEn:       s.NameEn,
		PricePerUnit: s.PricePerUnit.StringFixed(2),
		UnitName:     s.UnitName,
		UnitNameAr:   s.UnitNameAr,
		Currency:     currency,
	}
}

type orderResponse struct {
	ID                    uint             `json:"id"`
	Service               *serviceResponse `json:"service,omitempty"`
	ServiceID             uint             `json:"service_id"`
	Quantity              string           `json:"quantity"`
	ServiceCost           string           `json:"service_cost"`
	DeliveryCost          string           `json:"delivery_cost"`
	TotalCost             string           `json:"total_cost"`
	Location              string           `json:"location"`
	PaymentMethod         string           `json:"payment_method"`
	Currency              string           `json:"currency"`
	Notes                 string           `json:"notes"`
	Status                string           `json:"status"`
	EstimatedDeliveryTime int              `json:"estimated_delivery_time"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

func newOrderResponse(o *models.Order, currency string) orderResponse {
	resp := orderResponse{
		ID:                    o.ID,
		ServiceID:             o.ServiceID,
		Quantity:              o.Quantity.StringFixed(2),
		ServiceCost:           o.ServiceCost.StringFixed(2),
		DeliveryCost:          o.DeliveryCost.StringFixed(2),
		TotalCost:             o.TotalCost.StringFixed(2),
		Location:              o.Location,
		PaymentMethod:         string(o.PaymentMethod),
		Currency:              currency,
		Notes:                 o.Notes,
		Status:                string(o.Status),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	if o.Service != nil {
		svc := newServiceResponse(o.Service, currency)
		resp.Service = &svc
	}
	return resp
}

type trackingResponse struct {
	ID                    uint      `json:"id"`
	OrderID               uint      `json:"order_id"`
	RemainingDeliveryTime int       `json:"remaining_delivery_time"`
	LastUpdated           time.Time `json:"last_updated"`
}

func newTrackingResponse(t *models.OrderTracking) trackingResponse {
	return trackingResponse{
		ID:                    t.ID,
		OrderID:               t.OrderID,
		RemainingDeliveryTime: t.RemainingDeliveryTime,
		LastUpdated:           t.UpdatedAt,
	}
}
