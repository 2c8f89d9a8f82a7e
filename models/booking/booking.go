package booking

import (
	"time"

	"booking-portal/models/user"
)

// Booking belongs to exactly one user and is immutable after creation;
// there is no update or delete endpoint.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint      `gorm:"not null;index" json:"userId"`
	User   user.User `gorm:"foreignKey:UserID" json:"-"`

	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Work Order'" json:"status"`
	Date        time.Time `gorm:"not null" json:"date"`

	Attachments []Attachment `gorm:"foreignKey:BookingID" json:"attachments,omitempty"`
	Messages    []Message    `gorm:"foreignKey:BookingID" json:"messages,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
