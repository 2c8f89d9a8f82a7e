package routes

import (
	"os"

	authCtrl "booking-portal/controllers/auth"
	bookingCtrl "booking-portal/controllers/booking"
	userCtrl "booking-portal/controllers/user"
	"booking-portal/httpServices/servicem8"
	"booking-portal/logger"
	"booking-portal/middleware"
	"booking-portal/repository"
	bookingSvc "booking-portal/services/booking"
	loginSvc "booking-portal/services/login"
	registrationSvc "booking-portal/services/registration"
	userSvc "booking-portal/services/user"
	"booking-portal/storage"
	"booking-portal/types"
	bookingTypes "booking-portal/types/booking"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store *session.Store) error {
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/message-attachments"
	}
	fileStore, err := storage.NewFileStore(uploadDir)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	crmClient := servicem8.NewClient(os.Getenv("SERVICEM8_API_KEY"), os.Getenv("SERVICEM8_BASE_URL"))

	authController := authCtrl.NewAuthController(
		registrationSvc.NewService(userRepo, crmClient),
		loginSvc.NewService(userRepo),
		store,
	)
	userController := userCtrl.NewUserController(userSvc.NewService(userRepo))
	bookingController := bookingCtrl.NewBookingController(
		bookingSvc.NewService(bookingRepo, userRepo, crmClient),
		fileStore,
	)

	app.Get("/health-check", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).
			JSON(types.Success("Service is healthy", nil, fiber.StatusOK))
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Post("/register", middleware.ValidateBody[types.RegisterRequest](), authController.Register)

	loginGroup := app.Group("/login")
	loginGroup.Post("/", middleware.ValidateBody[types.LoginRequest](), authController.Login)
	loginGroup.Post("/logout", authController.Logout)
	loginGroup.Get("/session", authController.CheckSession)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	userGroup := app.Group("/users").Use(middleware.RequireAuth(store))
	userGroup.Get("/", userController.GetUsers)
	userGroup.Get("/:id", middleware.ValidateIDParams("id"), userController.GetUser)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := app.Group("/bookings").Use(middleware.RequireAuth(store))
	bookingGroup.Get("/", bookingController.GetBookings)
	bookingGroup.Post("/", middleware.ValidateBody[bookingTypes.CreateBookingRequest](), bookingController.CreateBooking)
	bookingGroup.Get("/:id", middleware.ValidateIDParams("id"), bookingController.GetBookingByID)
	bookingGroup.Get("/:bookingId/attachments/:attachmentId",
		middleware.ValidateIDParams("bookingId", "attachmentId"), bookingController.GetAttachment)
	bookingGroup.Post("/:id/messages",
		middleware.ValidateIDParams("id"), bookingController.CreateMessage)
	bookingGroup.Get("/:bookingId/messages/:messageId/attachments/:attachmentId",
		middleware.ValidateIDParams("bookingId", "messageId", "attachmentId"), bookingController.GetMessageAttachment)

	return nil
}
