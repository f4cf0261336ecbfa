package user

import "time"

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    *string    `gorm:"size:255" json:"-"`
	PhotoURL    string     `gorm:"size:512" json:"photo_url"`
	Provider    string     `gorm:"size:20;default:'password'" json:"provider"`
	GoogleSub   *string    `gorm:"size:64;uniqueIndex" json:"-"`
	Role        Role       `gorm:"size:20;default:'user';index" json:"role"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
