package repository

import "gorm.io/gorm"

type Repository struct {
	Users    UserRepo
	Services ServiceRepo
	Orders   OrderRepo
	Tracking TrackingRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		Users:    NewUserRepo(db),
		Services: NewServiceRepo(db),
		Orders:   NewOrderRepo(db),
		Tracking: NewTrackingRepo(db),
	}
}
