package repository

import (
	"context"
	"errors"

	"github.com/khadamat/backend/internal/models"
	"gorm.io/gorm"
)

type OrderRepo interface {
	// CreateWithTracking persists the order and its tracking row in one transaction.
	CreateWithTracking(ctx context.Context, o *models.Order) error
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	UpdateStatus(ctx context.Context, o *models.Order) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) CreateWithTracking(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Service", "User", "Tracking").Create(o).Error; err != nil {
			return err
		}
		tracking := &models.OrderTracking{
			OrderID:               o.ID,
			RemainingDeliveryTime: o.EstimatedDeliveryTime,
		}
		if err := tx.Create(tracking).Error; err != nil {
			return err
		}
		o.Tracking = tracking
		return nil
	})
}

func (r *orderRepo) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Service").
		Where("id = ? AND user_id = ?", id, userID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Preload("Service").
		Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", o.ID).
		Update("status", o.Status).Error
}
