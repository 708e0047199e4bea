package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petgram/internal/identity"
	"petgram/internal/service"
)

// UserHandler bundles account handlers for logged in users.
type UserHandler struct {
	svc      service.UserService
	resolver *identity.Resolver
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, resolver *identity.Resolver) *UserHandler {
	return &UserHandler{svc: svc, resolver: resolver}
}

// Me godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	caller, err := h.resolver.Require(ctx, claimsFrom(c))
	if err != nil {
		return respondError(err)
	}

	profile, err := h.svc.Profile(ctx, caller)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
