package middleware

import (
	"fmt"

	"booking-portal/constants"
	"booking-portal/types"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Defaulter lets a request type fill omitted fields before validation runs.
type Defaulter interface {
	ApplyDefaults()
}

// ValidateBody parses the JSON body into T, applies defaults, and runs the
// declarative validation rules. On failure the request is answered with a
// 400 envelope naming the first violated rule and the controller never runs.
// On success the parsed value is stored in locals, so downstream code can
// trust its shape and types.
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req T
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(types.Failure("Invalid request body", fiber.StatusBadRequest))
		}

		if d, ok := any(&req).(Defaulter); ok {
			d.ApplyDefaults()
		}

		if err := validate.Struct(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(types.Failure(firstValidationError(err), fiber.StatusBadRequest))
		}

		c.Locals(constants.LocalValidatedBody, req)
		return c.Next()
	}
}

// ValidatedBody returns the value stored by ValidateBody.
func ValidatedBody[T any](c *fiber.Ctx) T {
	req, _ := c.Locals(constants.LocalValidatedBody).(T)
	return req
}

// ValidateIDParams coerces the named path parameters to positive integers,
// answering 400 when any of them is not one. Parsed values are stored in
// locals under "param:<name>".
func ValidateIDParams(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, name := range names {
			id, err := c.ParamsInt(name)
			if err != nil || id <= 0 {
				return c.Status(fiber.StatusBadRequest).
					JSON(types.Failure(fmt.Sprintf("Invalid %s: expected a positive integer", name), fiber.StatusBadRequest))
			}
			c.Locals("param:"+name, uint(id))
		}
		return c.Next()
	}
}

// ParamID returns a path id stored by ValidateIDParams.
func ParamID(c *fiber.Ctx, name string) uint {
	id, _ := c.Locals("param:" + name).(uint)
	return id
}

func firstValidationError(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return "Invalid email address"
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "datetime":
			return "Date must be a valid ISO datetime"
		default:
			return fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag())
		}
	}
	return "Invalid request"
}
