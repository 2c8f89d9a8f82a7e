package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"booking-portal/database"
	"booking-portal/logger"
	"booking-portal/routes"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       60 * 1024 * 1024, // room for 5 x 10MB uploads plus form overhead
		ErrorHandler:    errorHandler,
	})
	env := godotenv.Load()
	if env != nil {
		logger.Error("Error loading .env file", env)
		fmt.Println("Error loading .env file", env)
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        envInt("RATE_LIMIT_MAX", 100),
		Expiration: time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(types.Failure("Too many requests, please try again later.", fiber.StatusTooManyRequests))
		},
	}))

	store := session.New(newSessionConfig())

	if err := routes.SetupRoutes(app, db, store); err != nil {
		logger.Error("Failed to set up routes", err)
		return
	}

	app_host := os.Getenv("APP_HOST")
	app_port := os.Getenv("APP_PORT")
	logger.Success("Server is running on ip: " + app_host + " port: " + app_port +
		"\n\t\t\t\t\t\t******************************************************************************************\n")
	if err := app.Listen(app_host + ":" + app_port); err != nil {
		logger.Error("Server stopped", err)
	}
}

// newSessionConfig builds the session cookie settings. The production
// frontend runs on a different origin with credentialed CORS, so the cookie
// must be Secure + SameSite None there or browsers drop it on cross-site
// requests; everywhere else Lax.
func newSessionConfig() session.Config {
	production := os.Getenv("APP_ENV") == "production"
	sameSite := "Lax"
	if production {
		sameSite = "None"
	}
	return session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:sessionId",
		CookieHTTPOnly: true,
		CookieSecure:   production,
		CookieSameSite: sameSite,
	}
}

// errorHandler turns any error that escapes a handler into the uniform
// response envelope. Unexpected errors are logged with their real cause and
// answered with a generic message.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An unexpected error occurred."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code != fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}
	if code == fiber.StatusInternalServerError {
		logger.Error("Unhandled error on "+c.Method()+" "+c.Path(), err)
	}

	return c.Status(code).JSON(types.Failure(message, code))
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
