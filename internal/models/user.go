package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. Username and email are globally unique;
// date_joined is written once at registration and never changes.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	Bio          string    `gorm:"type:text" json:"bio"`
	ProfilePic   string    `gorm:"size:255" json:"profile_pic"`
	DateJoined   string    `gorm:"size:10;not null" json:"date_joined"`
	IsPremium    bool      `gorm:"not null;default:false" json:"is_premium"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
