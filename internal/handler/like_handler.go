package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petgram/internal/identity"
	"petgram/internal/service"
)

// LikeHandler handles like and favorite mutations.
type LikeHandler struct {
	likeService service.LikeService
	resolver    *identity.Resolver
}

// NewLikeHandler creates a new like handler.
func NewLikeHandler(likeService service.LikeService, resolver *identity.Resolver) *LikeHandler {
	return &LikeHandler{likeService: likeService, resolver: resolver}
}

// LikeAnonymousPhoto godoc
// @Summary Add an anonymous like to a photo
// @Description Anonymous likes only ever increase the counter.
// @Tags likes
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{id}/anonymous-like [post]
func (h *LikeHandler) LikeAnonymousPhoto(c echo.Context) error {
	photoID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return respondError(err)
	}

	photo, err := h.likeService.LikeAnonymousPhoto(c.Request().Context(), photoID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photo)
}

// LikePhoto godoc
// @Summary Toggle a photo in the caller's favorites
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{id}/like [post]
func (h *LikeHandler) LikePhoto(c echo.Context) error {
	photoID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return respondError(err)
	}

	ctx := c.Request().Context()
	caller, err := h.resolver.Require(ctx, claimsFrom(c))
	if err != nil {
		return respondError(err)
	}

	photo, err := h.likeService.LikePhoto(ctx, photoID, caller)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photo)
}
