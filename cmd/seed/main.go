package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"petgram/internal/config"
	"petgram/internal/db"
	"petgram/internal/model"
	"petgram/internal/repository"
	"petgram/internal/service"
)

//go:embed catalog.json
var embeddedCatalog []byte

// SeedCatalog is the layout of the seed document.
type SeedCatalog struct {
	Categories []SeedCategory `json:"categories"`
	Photos     []SeedPhoto    `json:"photos"`
}

// SeedCategory is one category entry of the seed document.
type SeedCategory struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Cover string `json:"cover"`
	Path  string `json:"path"`
}

// SeedPhoto is one photo entry of the seed document.
type SeedPhoto struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
	Src        string `json:"src"`
	Likes      uint   `json:"likes"`
	Duration   int    `json:"tiempo"`
	Difficulty string `json:"dificultad"`
	Rating     int    `json:"rating"`
}

func main() {
	log.Println("Starting seed script...")

	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
	cfg := config.Load()

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	data := embeddedCatalog
	if cfg.SeedURL != "" {
		log.Printf("Fetching catalog from: %s", cfg.SeedURL)
		data, err = fetchCatalog(cfg.SeedURL)
		if err != nil {
			log.Fatalf("Failed to fetch catalog: %v", err)
		}
	}

	categories, photos, err := parseCatalog(data)
	if err != nil {
		log.Fatalf("Failed to parse catalog: %v", err)
	}

	catalogService := service.NewCatalogService(
		repository.NewCategoryRepository(gormDB),
		repository.NewPhotoRepository(gormDB),
	)

	log.Println("Seeding catalog into database...")
	if err := catalogService.Seed(context.Background(), categories, photos); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Categories processed: %d", len(categories))
	log.Printf("  - Photos processed: %d", len(photos))
}

// fetchCatalog downloads a seed document.
func fetchCatalog(url string) ([]byte, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// parseCatalog decodes a seed document, skipping photos that point at an
// unknown category.
func parseCatalog(data []byte) ([]model.Category, []model.Photo, error) {
	var catalog SeedCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	known := make(map[uint]bool, len(catalog.Categories))
	categories := make([]model.Category, 0, len(catalog.Categories))
	for _, item := range catalog.Categories {
		known[item.ID] = true
		categories = append(categories, model.Category{
			ID:    item.ID,
			Name:  item.Name,
			Emoji: item.Emoji,
			Cover: item.Cover,
			Path:  item.Path,
		})
	}

	photos := make([]model.Photo, 0, len(catalog.Photos))
	skipped := 0
	for _, item := range catalog.Photos {
		if !known[item.CategoryID] || item.Src == "" {
			log.Printf("Skipping photo %d with unknown category %d or empty src", item.ID, item.CategoryID)
			skipped++
			continue
		}
		photos = append(photos, model.Photo{
			ID:         item.ID,
			CategoryID: item.CategoryID,
			Name:       item.Name,
			Src:        item.Src,
			Likes:      item.Likes,
			Duration:   item.Duration,
			Difficulty: item.Difficulty,
			Rating:     item.Rating,
		})
	}

	if skipped > 0 {
		log.Printf("Skipped %d invalid photos", skipped)
	}
	return categories, photos, nil
}
