package booking

import (
	"fmt"
	"time"

	"booking-portal/httpServices/servicem8"
	"booking-portal/logger"
	bookingModel "booking-portal/models/booking"
	userModel "booking-portal/models/user"
	"booking-portal/repository"
	"booking-portal/types"
	bookingTypes "booking-portal/types/booking"

	"github.com/gofiber/fiber/v2"
)

// BookingStore is the slice of the booking repository the service needs.
type BookingStore interface {
	Create(data repository.CreateBookingData) (*bookingModel.Booking, error)
	FindAllByUserID(userID uint) ([]bookingModel.Booking, error)
	FindByID(id, userID uint) (*bookingModel.Booking, error)
	FindAttachmentByID(bookingID, attachmentID, userID uint) (*bookingModel.Attachment, error)
	CreateMessage(bookingID, userID uint, content string, attachments []repository.CreateMessageAttachmentData) (*bookingModel.Message, error)
	FindMessageAttachmentByID(bookingID, messageID, attachmentID, userID uint) (*bookingModel.MessageAttachment, error)
}

// UserStore resolves the booking owner for the CRM sync.
type UserStore interface {
	FindByID(id uint) (*userModel.User, error)
}

// CRMClient creates the job record mirroring a booking.
type CRMClient interface {
	CreateJob(data servicem8.JobData) (*servicem8.Response, error)
}

// Service wraps the booking repository in envelope-returning operations.
type Service struct {
	bookings BookingStore
	users    UserStore
	crm      CRMClient
}

func NewService(bookings BookingStore, users UserStore, crm CRMClient) *Service {
	return &Service{bookings: bookings, users: users, crm: crm}
}

func (s *Service) GetBookingsByUserID(userID uint) *types.ServiceResponse {
	bookings, err := s.bookings.FindAllByUserID(userID)
	if err != nil {
		logger.Error("Error retrieving bookings", err)
		return types.Failure("An error occurred while retrieving bookings.", fiber.StatusInternalServerError)
	}
	if bookings == nil {
		bookings = []bookingModel.Booking{}
	}
	return types.Success("Bookings retrieved successfully", bookings, fiber.StatusOK)
}

// CreateBooking inserts the booking, then attempts the CRM job sync. The
// local write has already committed by the time the CRM is called, so sync
// failures are logged and the booking is still returned as created.
func (s *Service) CreateBooking(userID uint, req bookingTypes.CreateBookingRequest) *types.ServiceResponse {
	owner, err := s.users.FindByID(userID)
	if err != nil {
		logger.Error("Error creating booking", err)
		return types.Failure("An error occurred while creating the booking.", fiber.StatusInternalServerError)
	}
	if owner == nil {
		return types.Failure("User not found", fiber.StatusNotFound)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return types.Failure("Date must be a valid ISO datetime", fiber.StatusBadRequest)
	}

	created, err := s.bookings.Create(repository.CreateBookingData{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Date:        date,
	})
	if err != nil {
		logger.Error("Error creating booking", err)
		return types.Failure("An error occurred while creating the booking.", fiber.StatusInternalServerError)
	}

	if s.crm != nil {
		if _, err := s.crm.CreateJob(servicem8.JobData{
			Status:      req.Status,
			Date:        req.Date,
			CompanyUUID: owner.Uuid,
		}); err != nil {
			logger.Warning(fmt.Sprintf("Failed to create ServiceM8 job for booking %d: %v", created.ID, err))
		} else {
			logger.Info(fmt.Sprintf("ServiceM8 job created for booking %d", created.ID))
		}
	}

	return types.Success("Booking created successfully", created, fiber.StatusCreated)
}

func (s *Service) GetBookingByID(bookingID, userID uint) *types.ServiceResponse {
	b, err := s.bookings.FindByID(bookingID, userID)
	if err != nil {
		logger.Error("Error retrieving booking", err)
		return types.Failure("An error occurred while retrieving the booking.", fiber.StatusInternalServerError)
	}
	if b == nil {
		return types.Failure("Booking not found", fiber.StatusNotFound)
	}
	return types.Success("Booking retrieved successfully", b, fiber.StatusOK)
}

func (s *Service) GetAttachment(bookingID, attachmentID, userID uint) *types.ServiceResponse {
	att, err := s.bookings.FindAttachmentByID(bookingID, attachmentID, userID)
	if err != nil {
		logger.Error("Error retrieving attachment", err)
		return types.Failure("An error occurred while retrieving the attachment.", fiber.StatusInternalServerError)
	}
	if att == nil {
		return types.Failure("Attachment not found", fiber.StatusNotFound)
	}
	return types.Success("Attachment retrieved successfully", att, fiber.StatusOK)
}

func (s *Service) CreateMessage(bookingID, userID uint, content string, attachments []repository.CreateMessageAttachmentData) *types.ServiceResponse {
	msg, err := s.bookings.CreateMessage(bookingID, userID, content, attachments)
	if err != nil {
		logger.Error("Error creating message", err)
		return types.Failure("An error occurred while creating the message.", fiber.StatusInternalServerError)
	}
	if msg == nil {
		return types.Failure("Booking not found or you don't have permission to add messages", fiber.StatusNotFound)
	}
	return types.Success("Message created successfully", msg, fiber.StatusCreated)
}

func (s *Service) GetMessageAttachment(bookingID, messageID, attachmentID, userID uint) *types.ServiceResponse {
	att, err := s.bookings.FindMessageAttachmentByID(bookingID, messageID, attachmentID, userID)
	if err != nil {
		logger.Error("Error retrieving message attachment", err)
		return types.Failure("An error occurred while retrieving the message attachment.", fiber.StatusInternalServerError)
	}
	if att == nil {
		return types.Failure("Message attachment not found", fiber.StatusNotFound)
	}
	return types.Success("Message attachment retrieved successfully", att, fiber.StatusOK)
}
