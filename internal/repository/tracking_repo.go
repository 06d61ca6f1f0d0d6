package repository

import (
	"context"
	"errors"

	"github.com/khadamat/backend/internal/models"
	"gorm.io/gorm"
)

type TrackingRepo interface {
	GetOrCreate(ctx context.Context, orderID uint, remaining int) (*models.OrderTracking, error)
}

type trackingRepo struct{ db *gorm.DB }

func NewTrackingRepo(db *gorm.DB) TrackingRepo { return &trackingRepo{db: db} }

// GetOrCreate returns the order's tracking row, creating it on first query.
// The unique index on order_id arbitrates concurrent first-trackers: the
// loser of the insert race re-reads the winner's row.
func (r *trackingRepo) GetOrCreate(ctx context.Context, orderID uint, remaining int) (*models.OrderTracking, error) {
	var tracking models.OrderTracking
	res := r.db.WithContext(ctx).
		Where(&models.OrderTracking{OrderID: orderID}).
		Attrs(&models.OrderTracking{RemainingDeliveryTime: remaining}).
		FirstOrCreate(&tracking)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&tracking).Error
			if err != nil {
				return nil, err
			}
			return &tracking, nil
		}
		return nil, res.Error
	}
	return &tracking, nil
}
