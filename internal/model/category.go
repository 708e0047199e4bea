package model

// Category groups photos and is shown as a navigation entry.
type Category struct {
	ID    uint   `json:"_id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Cover string `json:"cover" gorm:"size:1024"`
	Emoji string `json:"emoji" gorm:"size:32"`
	Path  string `json:"path" gorm:"size:255"`
}
