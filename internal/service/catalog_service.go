package service

import (
	"context"

	"github.com/khadamat/backend/internal/models"
	"github.com/khadamat/backend/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Catalog seed definition. Prices are per kWh / Liter / m³ in the
// configured currency.
var seedServices = []models.Service{
	{
		ServiceType:  models.ServiceElectricity,
		NameAr:       "كهرباء",
		NameEn:       "Electricity",
		PricePerUnit: decimal.RequireFromString("200.00"),
		UnitName:     "kWh",
		UnitNameAr:   "كيلوواط",
	},
	{
		ServiceType:  models.ServiceWater,
		NameAr:       "ماء",
		NameEn:       "Water",
		PricePerUnit: decimal.RequireFromString("150.00"),
		UnitName:     "Liter",
		UnitNameAr:   "لتر",
	},
	{
		ServiceType:  models.ServiceGas,
		NameAr:       "غاز",
		NameEn:       "Gas",
		PricePerUnit: decimal.RequireFromString("180.00"),
		UnitName:     "m³",
		UnitNameAr:   "متر مكعب",
	},
}

type CatalogService struct {
	services repository.ServiceRepo
	currency string
	log      *zap.Logger
}

func NewCatalogService(services repository.ServiceRepo, currency string, log *zap.Logger) *CatalogService {
	return &CatalogService{services: services, currency: currency, log: log}
}

func (s *CatalogService) Currency() string { return s.currency }

// Seed loads the fixed catalog. Idempotent: existing service types are left
// untouched, missing ones are created.
func (s *CatalogService) Seed(ctx context.Context) error {
	for i := range seedServices {
		svc := seedServices[i]
		created, err := s.services.GetOrCreateByType(ctx, &svc)
		if err != nil {
			return err
		}
		if created {
			s.log.Info("seeded service", zap.String("service_type", string(svc.ServiceType)))
		}
	}
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.services.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

type CostPreview struct {
	Service  *models.Service
	Quantity decimal.Decimal
	Cost     decimal.Decimal
	Currency string
}

// PreviewCost computes what a quantity of a service would cost without
// creating anything. Open to unauthenticated callers.
func (s *CatalogService) PreviewCost(ctx context.Context, serviceID uint, rawQuantity string) (*CostPreview, error) {
	svc, err := s.Get(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	quantity, err := ParseQuantity(rawQuantity)
	if err != nil {
		return nil, invalid("quantity", err)
	}
	return &CostPreview{
		Service:  svc,
		Quantity: quantity,
		Cost:     ServiceCost(svc.PricePerUnit, quantity),
		Currency: s.currency,
	}, nil
}
