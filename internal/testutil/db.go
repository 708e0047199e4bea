// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"petgram/internal/db"
	"petgram/internal/model"
)

// NewDB opens a migrated SQLite database in a temporary directory. It is
// closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "petgram.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}

// SeedCatalog inserts two categories and three photos:
// photos 1 and 2 in category 1, photo 3 in category 2, all with zero likes.
func SeedCatalog(t *testing.T, gormDB *gorm.DB) {
	t.Helper()
	categories := []model.Category{
		{ID: 1, Name: "Cats", Emoji: "🐱", Path: "/pet/1"},
		{ID: 2, Name: "Dogs", Emoji: "🐶", Path: "/pet/2"},
	}
	photos := []model.Photo{
		{ID: 1, Name: "Tabby", CategoryID: 1, Src: "https://img.example/1.jpg"},
		{ID: 2, Name: "Siamese", CategoryID: 1, Src: "https://img.example/2.jpg"},
		{ID: 3, Name: "Beagle", CategoryID: 2, Src: "https://img.example/3.jpg"},
	}
	if err := gormDB.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	if err := gormDB.Create(&photos).Error; err != nil {
		t.Fatalf("seed photos: %v", err)
	}
}
