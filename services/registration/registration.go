package registration

import (
	"fmt"

	"booking-portal/httpServices/servicem8"
	"booking-portal/logger"
	userModel "booking-portal/models/user"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user repository the registration flow needs.
type UserStore interface {
	FindByEmail(email string) (*userModel.User, error)
	Create(u *userModel.User) error
}

// CRMClient creates the company record mirroring a registered user.
type CRMClient interface {
	CreateClient(data servicem8.CompanyData) (*servicem8.Response, error)
}

// Service registers new users and syncs them to the CRM best-effort.
type Service struct {
	users UserStore
	crm   CRMClient
}

func NewService(users UserStore, crm CRMClient) *Service {
	return &Service{users: users, crm: crm}
}

// Register creates a user account. Duplicate emails are rejected with 409;
// the CRM sync is attempted after the local write commits and its failure
// never fails the registration.
func (s *Service) Register(req types.RegisterRequest) *types.ServiceResponse {
	existing, err := s.users.FindByEmail(req.Email)
	if err != nil {
		logger.Error("Error during registration", err)
		return types.Failure("An error occurred during registration.", fiber.StatusInternalServerError)
	}
	if existing != nil {
		return types.Failure("User with this email already exists", fiber.StatusConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error during registration", err)
		return types.Failure("An error occurred during registration.", fiber.StatusInternalServerError)
	}

	newUser := userModel.User{
		Uuid:        uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.users.Create(&newUser); err != nil {
		logger.Error("Error during registration", err)
		return types.Failure("An error occurred during registration.", fiber.StatusInternalServerError)
	}

	if s.crm != nil {
		if _, err := s.crm.CreateClient(servicem8.CompanyData{
			Name: newUser.Name,
			UUID: newUser.Uuid,
		}); err != nil {
			logger.Warning(fmt.Sprintf("Failed to create ServiceM8 company for user %s: %v", newUser.Email, err))
		} else {
			logger.Info("ServiceM8 company created for user: " + newUser.Email)
		}
	}

	return types.Success("User registered successfully", &newUser, fiber.StatusCreated)
}
