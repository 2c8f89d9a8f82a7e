package repository

import (
	"errors"
	"time"

	bookingModel "booking-portal/models/booking"

	"gorm.io/gorm"
)

// CreateBookingData is the subset of booking fields the create flow accepts.
type CreateBookingData struct {
	UserID      uint
	Title       string
	Description *string
	Status      string
	Date        time.Time
}

// CreateMessageAttachmentData is the file metadata persisted alongside a message.
type CreateMessageAttachmentData struct {
	FileName string
	FilePath string
	FileSize int64
	MimeType string
}

// BookingRepository wraps all booking, message and attachment queries.
//
// Every lookup filters by the owning user. Nested resources are resolved
// with sequential ownership checks (booking→user, then message→booking,
// then attachment→message); the first missing link short-circuits to
// (nil, nil) without querying deeper.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(data CreateBookingData) (*bookingModel.Booking, error) {
	b := bookingModel.Booking{
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status,
		Date:        data.Date,
	}
	if err := r.db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) FindAllByUserID(userID uint) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByID returns the booking with its attachments and messages (including
// message attachments), or (nil, nil) when it does not exist or is owned by
// someone else.
func (r *BookingRepository) FindByID(id, userID uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := r.db.
		Preload("Attachments").
		Preload("Messages").
		Preload("Messages.MessageAttachments").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) FindAttachmentByID(bookingID, attachmentID, userID uint) (*bookingModel.Attachment, error) {
	// First verify the booking belongs to the user.
	owned, err := r.bookingOwnedBy(bookingID, userID)
	if err != nil || !owned {
		return nil, err
	}

	var att bookingModel.Attachment
	err = r.db.
		Where("id = ? AND booking_id = ?", attachmentID, bookingID).
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// CreateMessage inserts a message and its attachments in one transaction,
// after proving the booking belongs to the user. Returns (nil, nil) when the
// ownership check fails.
func (r *BookingRepository) CreateMessage(bookingID, userID uint, content string, attachments []CreateMessageAttachmentData) (*bookingModel.Message, error) {
	owned, err := r.bookingOwnedBy(bookingID, userID)
	if err != nil || !owned {
		return nil, err
	}

	msg := bookingModel.Message{
		BookingID: bookingID,
		UserID:    userID,
		Content:   content,
	}
	for _, att := range attachments {
		msg.MessageAttachments = append(msg.MessageAttachments, bookingModel.MessageAttachment{
			FileName: att.FileName,
			FilePath: att.FilePath,
			FileSize: att.FileSize,
			MimeType: att.MimeType,
		})
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&msg).Error
	})
	if err != nil {
		return nil, err
	}

	if msg.MessageAttachments == nil {
		msg.MessageAttachments = []bookingModel.MessageAttachment{}
	}
	return &msg, nil
}

func (r *BookingRepository) FindMessageAttachmentByID(bookingID, messageID, attachmentID, userID uint) (*bookingModel.MessageAttachment, error) {
	// booking→user
	owned, err := r.bookingOwnedBy(bookingID, userID)
	if err != nil || !owned {
		return nil, err
	}

	// message→booking
	var msg bookingModel.Message
	err = r.db.
		Where("id = ? AND booking_id = ?", messageID, bookingID).
		First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// attachment→message
	var att bookingModel.MessageAttachment
	err = r.db.
		Where("id = ? AND message_id = ?", attachmentID, messageID).
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

func (r *BookingRepository) bookingOwnedBy(bookingID, userID uint) (bool, error) {
	var b bookingModel.Booking
	err := r.db.
		Select("id").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
