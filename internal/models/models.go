package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceElectricity ServiceType = "electricity"
	ServiceWater       ServiceType = "water"
	ServiceGas         ServiceType = "gas"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInProgress OrderStatus = "in_progress"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Account identified by mobile number
type User struct {
	gorm.Model
	Username     string `gorm:"not null"`
	MobileNumber string `gorm:"size:20;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string
	FirstName    string
	LastName     string
	IsActive     bool    `gorm:"not null;default:true"`
	Orders       []Order `gorm:"constraint:OnDelete:CASCADE"`
}

// Metered utility service; one row per type
type Service struct {
	gorm.Model
	ServiceType  ServiceType     `gorm:"size:20;uniqueIndex;not null"`
	NameAr       string          `gorm:"size:100;not null"`
	NameEn       string          `gorm:"size:100;not null"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UnitName     string          `gorm:"size:50;not null"`
	UnitNameAr   string          `gorm:"size:50;not null"`
}

type Order struct {
	gorm.Model
	UserID                uint `gorm:"index;not null"`
	User                  *User
	ServiceID             uint `gorm:"not null"`
	Service               *Service
	Quantity              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ServiceCost           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryCost          decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TotalCost             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Location              string          `gorm:"not null"`
	PaymentMethod         PaymentMethod   `gorm:"size:10;not null"`
	Notes                 string
	Status                OrderStatus `gorm:"size:20;not null;default:'pending'"`
	EstimatedDeliveryTime int         `gorm:"not null;default:60"` // minutes
	Tracking              *OrderTracking `gorm:"constraint:OnDelete:CASCADE"`
}

// Delivery progress companion, exactly one per order
type OrderTracking struct {
	gorm.Model
	OrderID               uint `gorm:"uniqueIndex;not null"`
	Order                 *Order
	RemainingDeliveryTime int `gorm:"not null"` // minutes
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Service{}, &Order{}, &OrderTracking{})
}
