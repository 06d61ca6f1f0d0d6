package repository

import (
	"context"
	"errors"

	"github.com/khadamat/backend/internal/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByMobileNumber(ctx context.Context, number string) (*models.User, error)
	ExistsByMobileNumber(ctx context.Context, number string) (bool, error)
	Update(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, u *models.User) error
	ListAll(ctx context.Context) ([]models.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByMobileNumber(ctx context.Context, number string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("mobile_number = ?", number).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ExistsByMobileNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("mobile_number = ?", number).Count(&count).Error
	return count > 0, err
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) UpdatePassword(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", u.ID).
		Update("password_hash", u.PasswordHash).Error
}

func (r *userRepo) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}
