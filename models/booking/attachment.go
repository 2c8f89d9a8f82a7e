package booking

import "time"

// Attachment is file metadata hanging directly off a booking.
type Attachment struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uint   `gorm:"not null;index" json:"bookingId"`
	FileName  string `gorm:"type:varchar(255);not null" json:"fileName"`
	FilePath  string `gorm:"type:varchar(1024);not null" json:"filePath"`
	FileSize  int64  `gorm:"not null" json:"fileSize"`
	MimeType  string `gorm:"type:varchar(255);not null" json:"mimeType"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
