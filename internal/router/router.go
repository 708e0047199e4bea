package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"petgram/internal/auth"
	"petgram/internal/errors"
	"petgram/internal/handler"
)

// Handlers groups every HTTP handler the router exposes.
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Like    *handler.LikeHandler
	User    *handler.UserHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/categories", h.Catalog.Categories)
	api.POST("/photos/:id/anonymous-like", h.Like.LikeAnonymousPhoto)

	// Personalized routes: a valid token adds the caller's favorites, a
	// missing or bad one falls back to the anonymous view.
	personalized := api.Group("", OptionalJWT(jwtService))
	personalized.GET("/photos", h.Catalog.Photos)
	personalized.GET("/photos/:id", h.Catalog.Photo)

	// Secured routes (require JWT authentication)
	secured := api.Group("", RequireJWT(jwtService))
	secured.GET("/me", h.User.Me)
	secured.GET("/favs", h.Catalog.Favs)
	secured.POST("/photos/:id/like", h.Like.LikePhoto)
}

// RequireJWT rejects requests without a valid bearer token.
func RequireJWT(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// OptionalJWT stores claims for requests with a valid bearer token and lets
// every other request through without them.
func OptionalJWT(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
