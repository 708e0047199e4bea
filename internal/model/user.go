package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered user and owns a set of favorite photos.
type User struct {
	ID           uuid.UUID `json:"_id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:255"`
	Avatar       string    `json:"avatar" gorm:"size:512"`
	IsPremium    bool      `json:"isPremium" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Favorites []UserFavorite `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserFavorite is one photo in a user's favorite set.
type UserFavorite struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	PhotoID   uint      `gorm:"primaryKey;index"`
	CreatedAt time.Time
}
