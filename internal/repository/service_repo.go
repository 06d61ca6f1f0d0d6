package repository

import (
	"context"
	"errors"

	"github.com/khadamat/backend/internal/models"
	"gorm.io/gorm"
)

type ServiceRepo interface {
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	GetOrCreateByType(ctx context.Context, svc *models.Service) (created bool, err error)
}

type serviceRepo struct{ db *gorm.DB }

func NewServiceRepo(db *gorm.DB) ServiceRepo { return &serviceRepo{db: db} }

func (r *serviceRepo) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepo) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Order("id").Find(&services).Error
	return services, err
}

// GetOrCreateByType keys on service_type, so re-running the seed never
// duplicates a catalog entry and never touches an existing one.
func (r *serviceRepo) GetOrCreateByType(ctx context.Context, svc *models.Service) (bool, error) {
	res := r.db.WithContext(ctx).
		Where(&models.Service{ServiceType: svc.ServiceType}).
		Attrs(&models.Service{
			NameAr:       svc.NameAr,
			NameEn:       svc.NameEn,
			PricePerUnit: svc.PricePerUnit,
			UnitName:     svc.UnitName,
			UnitNameAr:   svc.UnitNameAr,
		}).
		FirstOrCreate(svc)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
