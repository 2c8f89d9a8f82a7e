package user

import (
	"booking-portal/logger"
	userModel "booking-portal/models/user"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
)

// UserStore is the slice of the user repository the read endpoints need.
type UserStore interface {
	FindAll() ([]userModel.User, error)
	FindByID(id uint) (*userModel.User, error)
}

type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

func (s *Service) GetUsers() *types.ServiceResponse {
	users, err := s.users.FindAll()
	if err != nil {
		logger.Error("Error retrieving users", err)
		return types.Failure("An error occurred while retrieving users.", fiber.StatusInternalServerError)
	}
	if len(users) == 0 {
		return types.Failure("No users found", fiber.StatusNotFound)
	}
	return types.Success("Users found", users, fiber.StatusOK)
}

func (s *Service) GetUser(id uint) *types.ServiceResponse {
	u, err := s.users.FindByID(id)
	if err != nil {
		logger.Error("Error retrieving user", err)
		return types.Failure("An error occurred while retrieving the user.", fiber.StatusInternalServerError)
	}
	if u == nil {
		return types.Failure("User not found", fiber.StatusNotFound)
	}
	return types.Success("User found", u, fiber.StatusOK)
}
