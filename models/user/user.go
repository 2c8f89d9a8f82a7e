package user

import (
	"time"
)

// User is an account holder. Uuid is the external identifier handed to the
// CRM when the account is synced; the password hash never leaves the JSON
// boundary.
type User struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid        string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Email       string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	PhoneNumber string `gorm:"type:varchar(20);not null" json:"phone_number"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
