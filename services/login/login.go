package login

import (
	"booking-portal/logger"
	userModel "booking-portal/models/user"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user repository the login flow needs.
type UserStore interface {
	FindByEmail(email string) (*userModel.User, error)
}

// Service verifies credentials against stored bcrypt hashes.
type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// Login returns the user snapshot on success. Unknown emails and wrong
// passwords share the same message so the response does not leak which
// half was wrong.
func (s *Service) Login(req types.LoginRequest) *types.ServiceResponse {
	u, err := s.users.FindByEmail(req.Email)
	if err != nil {
		logger.Error("Error during login", err)
		return types.Failure("An error occurred during login.", fiber.StatusInternalServerError)
	}
	if u == nil {
		return types.Failure("Invalid email or password", fiber.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return types.Failure("Invalid email or password", fiber.StatusUnauthorized)
	}

	return types.Success("Login successful", &types.LoginResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}, fiber.StatusOK)
}
