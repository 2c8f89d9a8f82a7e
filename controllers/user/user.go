package user

import (
	"booking-portal/middleware"
	userService "booking-portal/services/user"

	"github.com/gofiber/fiber/v2"
)

// UserController exposes the user read endpoints.
type UserController struct {
	service *userService.Service
}

func NewUserController(service *userService.Service) *UserController {
	return &UserController{service: service}
}

func (h *UserController) GetUsers(c *fiber.Ctx) error {
	sr := h.service.GetUsers()
	return c.Status(sr.StatusCode).JSON(sr)
}

func (h *UserController) GetUser(c *fiber.Ctx) error {
	id := middleware.ParamID(c, "id")
	sr := h.service.GetUser(id)
	return c.Status(sr.StatusCode).JSON(sr)
}
