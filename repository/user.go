package repository

import (
	"errors"

	userModel "booking-portal/models/user"

	"gorm.io/gorm"
)

// UserRepository is a one-method-per-query wrapper around the ORM for the
// users table. Not-found is signalled as (nil, nil); a non-nil error always
// means the query itself failed.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll() ([]userModel.User, error) {
	var users []userModel.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(id uint) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *userModel.User) error {
	return r.db.Create(u).Error
}
