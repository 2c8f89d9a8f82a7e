package auth

import (
	"booking-portal/constants"
	"booking-portal/logger"
	"booking-portal/middleware"
	userModel "booking-portal/models/user"
	loginService "booking-portal/services/login"
	registrationService "booking-portal/services/registration"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthController handles registration, login, logout and session inspection.
type AuthController struct {
	registration *registrationService.Service
	login        *loginService.Service
	store        *session.Store
}

func NewAuthController(registration *registrationService.Service, login *loginService.Service, store *session.Store) *AuthController {
	return &AuthController{registration: registration, login: login, store: store}
}

// Register creates the account and, on success, logs the new user straight in
// by populating the session.
func (h *AuthController) Register(c *fiber.Ctx) error {
	req := middleware.ValidatedBody[types.RegisterRequest](c)

	sr := h.registration.Register(req)
	if sr.Success {
		if u, ok := sr.ResponseObject.(*userModel.User); ok {
			h.populateSession(c, u.ID, u.Name, u.Email, u.PhoneNumber)
		}
	}

	return c.Status(sr.StatusCode).JSON(sr)
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	req := middleware.ValidatedBody[types.LoginRequest](c)

	sr := h.login.Login(req)
	if sr.Success {
		if u, ok := sr.ResponseObject.(*types.LoginResponse); ok {
			h.populateSession(c, u.ID, u.Name, u.Email, u.PhoneNumber)
		}
	}

	return c.Status(sr.StatusCode).JSON(sr)
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		err = sess.Destroy()
	}
	if err != nil {
		logger.Error("Failed to destroy session", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.Failure("Failed to logout", fiber.StatusInternalServerError))
	}

	return c.Status(fiber.StatusOK).
		JSON(types.Success("Logout successful", nil, fiber.StatusOK))
}

// CheckSession returns the session snapshot for an authenticated caller,
// 401 otherwise.
func (h *AuthController) CheckSession(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(types.Failure("User is not authenticated", fiber.StatusUnauthorized))
	}

	userID, ok := sess.Get(constants.SessionUserID).(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).
			JSON(types.Failure("User is not authenticated", fiber.StatusUnauthorized))
	}

	name, _ := sess.Get(constants.SessionUserName).(string)
	email, _ := sess.Get(constants.SessionUserEmail).(string)
	phone, _ := sess.Get(constants.SessionUserPhoneNumber).(string)

	return c.Status(fiber.StatusOK).JSON(types.Success("User is authenticated", &types.SessionSnapshot{
		UserID:          userID,
		UserName:        name,
		UserEmail:       email,
		UserPhoneNumber: phone,
	}, fiber.StatusOK))
}

func (h *AuthController) populateSession(c *fiber.Ctx, userID uint, name, email, phone string) {
	sess, err := h.store.Get(c)
	if err != nil {
		logger.Error("Failed to open session", err)
		return
	}

	sess.Set(constants.SessionUserID, userID)
	sess.Set(constants.SessionUserName, name)
	sess.Set(constants.SessionUserEmail, email)
	sess.Set(constants.SessionUserPhoneNumber, phone)

	if err := sess.Save(); err != nil {
		logger.Error("Failed to save session", err)
	}
}
