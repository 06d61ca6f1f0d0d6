package service

import (
	"context"

	"github.com/khadamat/backend/internal/models"
	"github.com/khadamat/backend/internal/repository"
	"go.uber.org/zap"
)

const defaultDeliveryMinutes = 60

type OrderService struct {
	orders   repository.OrderRepo
	tracking repository.TrackingRepo
	services repository.ServiceRepo
	log      *zap.Logger
}

func NewOrderService(orders repository.OrderRepo, tracking repository.TrackingRepo, services repository.ServiceRepo, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, tracking: tracking, services: services, log: log}
}

type CheckoutInput struct {
	ServiceID     uint
	Quantity      string
	Location      string
	PaymentMethod string
	Notes         string
	DeliveryCost  string
	// nil means not supplied; a supplied value must be a positive number
	// of minutes, so an explicit zero is rejected rather than defaulted.
	EstimatedDeliveryTime *int
}

// Checkout validates the request, prices it and persists the order together
// with its tracking row in one transaction. Nothing is written on failure.
func (s *OrderService) Checkout(ctx context.Context, userID uint, in CheckoutInput) (*models.Order, error) {
	quantity, err := ParseQuantity(in.Quantity)
	if err != nil {
		return nil, invalid("quantity", err)
	}
	deliveryCost, err := ParseDeliveryCost(in.DeliveryCost)
	if err != nil {
		return nil, invalid("delivery_cost", err)
	}
	if in.Location == "" {
		return nil, invalid("location", ErrFieldRequired)
	}
	payment := models.PaymentMethod(in.PaymentMethod)
	if in.PaymentMethod == "" {
		return nil, invalid("payment_method", ErrFieldRequired)
	}
	if !payment.Valid() {
		return nil, invalid("payment_method", ErrInvalidPaymentMethod)
	}
	estimated := defaultDeliveryMinutes
	if in.EstimatedDeliveryTime != nil {
		estimated = *in.EstimatedDeliveryTime
		if estimated <= 0 {
			return nil, invalid("estimated_delivery_time", ErrInvalidDeliveryWindow)
		}
	}

	svc, err := s.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	serviceCost := ServiceCost(svc.PricePerUnit, quantity)
	order := &models.Order{
		UserID:                userID,
		ServiceID:             svc.ID,
		Service:               svc,
		Quantity:              quantity,
		ServiceCost:           serviceCost,
		DeliveryCost:          deliveryCost,
		TotalCost:             TotalCost(serviceCost, deliveryCost),
		Location:              in.Location,
		PaymentMethod:         payment,
		Notes:                 in.Notes,
		Status:                models.StatusPending,
		EstimatedDeliveryTime: estimated,
	}
	if err := s.orders.CreateWithTracking(ctx, order); err != nil {
		return nil, err
	}
	s.log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.String("service_type", string(svc.ServiceType)),
		zap.String("total_cost", order.TotalCost.StringFixed(2)),
	)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.orders.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Track returns the order's tracking record, lazily creating one seeded with
// the order's estimated delivery time. Checkout already creates the row, so
// the lazy path only fires for orders that predate it or lost theirs.
func (s *OrderService) Track(ctx context.Context, userID, orderID uint) (*models.OrderTracking, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.tracking.GetOrCreate(ctx, order.ID, order.EstimatedDeliveryTime)
}

func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID uint, status string) (*models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return nil, invalid("status", ErrInvalidStatus)
	}
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	order.Status = next
	if err := s.orders.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
