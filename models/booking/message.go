package booking

import "time"

// Message is a free-text note on a booking, written by the booking's owner.
type Message struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uint   `gorm:"not null;index" json:"bookingId"`
	UserID    uint   `gorm:"not null" json:"userId"`
	Content   string `gorm:"type:text;not null" json:"content"`

	MessageAttachments []MessageAttachment `gorm:"foreignKey:MessageID" json:"messageAttachments"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// MessageAttachment carries the metadata of a file uploaded alongside a
// message. Created transactionally with its message.
type MessageAttachment struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID uint   `gorm:"not null;index" json:"messageId"`
	FileName  string `gorm:"type:varchar(255);not null" json:"fileName"`
	FilePath  string `gorm:"type:varchar(1024);not null" json:"filePath"`
	FileSize  int64  `gorm:"not null" json:"fileSize"`
	MimeType  string `gorm:"type:varchar(255);not null" json:"mimeType"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
