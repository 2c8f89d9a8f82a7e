package booking

import (
	"errors"
	"mime/multipart"
	"strings"

	"booking-portal/logger"
	"booking-portal/middleware"
	bookingModel "booking-portal/models/booking"
	"booking-portal/repository"
	bookingService "booking-portal/services/booking"
	"booking-portal/storage"
	"booking-portal/types"
	bookingTypes "booking-portal/types/booking"

	"github.com/gofiber/fiber/v2"
)

// BookingController exposes the booking, message and attachment endpoints.
// Every handler runs behind the auth guard, so the caller identity is always
// available from locals.
type BookingController struct {
	service *bookingService.Service
	files   *storage.FileStore
}

func NewBookingController(service *bookingService.Service, files *storage.FileStore) *BookingController {
	return &BookingController{service: service, files: files}
}

func (h *BookingController) GetBookings(c *fiber.Ctx) error {
	userID := middleware.AuthenticatedUserID(c)
	sr := h.service.GetBookingsByUserID(userID)
	return c.Status(sr.StatusCode).JSON(sr)
}

func (h *BookingController) CreateBooking(c *fiber.Ctx) error {
	userID := middleware.AuthenticatedUserID(c)
	req := middleware.ValidatedBody[bookingTypes.CreateBookingRequest](c)

	sr := h.service.CreateBooking(userID, req)
	return c.Status(sr.StatusCode).JSON(sr)
}

func (h *BookingController) GetBookingByID(c *fiber.Ctx) error {
	userID := middleware.AuthenticatedUserID(c)
	bookingID := middleware.ParamID(c, "id")

	sr := h.service.GetBookingByID(bookingID, userID)
	return c.Status(sr.StatusCode).JSON(sr)
}

func (h *BookingController) GetAttachment(c *fiber.Ctx) error {
	userID := middleware.AuthenticatedUserID(c)
	bookingID := middleware.ParamID(c, "bookingId")
	attachmentID := middleware.ParamID(c, "attachmentId")

	sr := h.service.GetAttachment(bookingID, attachmentID, userID)
	return c.Status(sr.StatusCode).JSON(sr)
}

// CreateMessage accepts a multipart form with a "content" field and up to
// five "files" parts. Files are persisted to disk before the message row is
// written; if the upload is rejected no message is created.
func (h *BookingController) CreateMessage(c *fiber.Ctx) error {
	userID := middleware.AuthenticatedUserID(c)
	bookingID := middleware.ParamID(c, "id")

	content := strings.TrimSpace(c.FormValue("content"))
	if content == "" {
		// Plain JSON bodies are accepted too when no files are attached.
		var req bookingTypes.CreateMessageRequest
		if err := c.BodyParser(&req); err == nil {
			content = strings.TrimSpace(req.Content)
		}
	}
	if content == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.Failure("Content is required", fiber.StatusBadRequest))
	}

	var fileHeaders []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		fileHeaders = form.File["files"]
	}

	saved, err := h.files.SaveMessageFiles(fileHeaders)
	if err != nil {
		var rejected *storage.RejectedError
		if errors.As(err, &rejected) {
			return c.Status(fiber.StatusBadRequest).
				JSON(types.Failure(rejected.Reason, fiber.StatusBadRequest))
		}
		logger.Error("Failed to store message attachments", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.Failure("An error occurred while saving uploaded files.", fiber.StatusInternalServerError))
	}

	attachments := make([]repository.CreateMessageAttachmentData, len(saved))
	for i, f := range saved {
		attachments[i] = repository.CreateMessageAttachmentData{
			FileName: f.FileName,
			FilePath: f.FilePath,
			FileSize: f.FileSize,
			MimeType: f.MimeType,
		}
	}

	sr := h.service.CreateMessage(bookingID, userID, content, attachments)
	if !sr.Success {
		// The booking lookup failed after the files were written.
		h.files.Remove(saved)
	}
	return c.Status(sr.StatusCode).JSON(sr)
}

// GetMessageAttachment streams the stored file back to an owner who can reach
// it through the booking -> message -> attachment chain.
func (h *BookingController) GetMessageAttachment(c *fiber.Ctx) error {
	userID := middleware.AuthenticatedUserID(c)
	bookingID := middleware.ParamID(c, "bookingId")
	messageID := middleware.ParamID(c, "messageId")
	attachmentID := middleware.ParamID(c, "attachmentId")

	sr := h.service.GetMessageAttachment(bookingID, messageID, attachmentID, userID)
	if !sr.Success {
		return c.Status(sr.StatusCode).JSON(sr)
	}

	att, ok := sr.ResponseObject.(*bookingModel.MessageAttachment)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.Failure("An unexpected error occurred.", fiber.StatusInternalServerError))
	}

	if err := c.SendFile(att.FilePath); err != nil {
		logger.Error("Failed to send attachment file", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.Failure("An error occurred while reading the file.", fiber.StatusInternalServerError))
	}
	// SendFile derives Content-Type from the disk name's extension; the
	// MIME type recorded at upload time wins.
	c.Set(fiber.HeaderContentType, att.MimeType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+att.FileName+`"`)
	return nil
}
