package model

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a categorized picture with an aggregate like counter.
type Photo struct {
	ID         uint      `json:"_id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255"`
	CategoryID uint      `json:"categoryId" gorm:"not null;index"`
	Src        string    `json:"src" gorm:"size:1024;not null"`
	Likes      uint      `json:"likes" gorm:"not null;default:0"`

	// Optional metadata. Catalogs that do not carry it leave it out of
	// responses.
	Duration   int        `json:"tiempo,omitempty"`
	Difficulty string     `json:"dificultad,omitempty" gorm:"size:64"`
	Rating     int        `json:"rating,omitempty"`
	UserID     *uuid.UUID `json:"userId,omitempty" gorm:"type:char(36);index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Liked is computed per request against the caller's favorites.
	Liked bool `json:"liked" gorm:"-"`
}

// FavoriteSet is a set of photo ids.
type FavoriteSet map[uint]struct{}

// NewFavoriteSet builds a set from a list of photo ids.
func NewFavoriteSet(ids []uint) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s FavoriteSet) Contains(id uint) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in no particular order.
func (s FavoriteSet) IDs() []uint {
	ids := make([]uint, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// MarkLiked sets Liked on every photo according to favs.
func MarkLiked(photos []Photo, favs FavoriteSet) {
	for i := range photos {
		photos[i].Liked = favs.Contains(photos[i].ID)
	}
}
