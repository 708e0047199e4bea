package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"petgram/docs" // swagger docs
	"petgram/internal/auth"
	"petgram/internal/cache"
	"petgram/internal/config"
	"petgram/internal/db"
	"petgram/internal/handler"
	"petgram/internal/identity"
	"petgram/internal/repository"
	"petgram/internal/router"
	"petgram/internal/service"
)

// @title Petgram API
// @version 1.0
// @description Photo categories, anonymous likes and per-user favorites with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	loadDotenv()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	// The datastore is opened once; without it there is nothing to serve.
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		db.Reset(gormDB)
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unavailable, login throttling disabled until it recovers: %v", err)
	}
	cancel()
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	photoRepo := repository.NewPhotoRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	transactor := repository.NewTransactor(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	attemptStore := auth.NewAttemptStore(cacheClient, cfg.LoginAttemptWindow)
	resolver := identity.NewResolver(userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, attemptStore, service.AuthOptions{
		Delay:       cfg.AuthDelay,
		MaxAttempts: cfg.LoginMaxAttempts,
	})
	catalogService := service.NewCatalogService(categoryRepo, photoRepo)
	likeService := service.NewLikeService(userRepo, photoRepo, transactor)
	userService := service.NewUserService(userRepo)

	// Register routes
	router.Register(e, jwtService, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Catalog: handler.NewCatalogHandler(catalogService, resolver),
		Like:    handler.NewLikeHandler(likeService, resolver),
		User:    handler.NewUserHandler(userService, resolver),
	})

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		// SwaggerHost may already include scheme (http:// or https://)
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// loadDotenv loads the first .env found in the working directory or its parents.
func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				log.Printf("[env] load %s: %v", p, err)
				return
			}
			log.Println("[env] loaded", p)
			return
		}
	}
}
