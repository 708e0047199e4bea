package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petgram/internal/identity"
	"petgram/internal/service"
)

// CatalogHandler serves categories and photos.
type CatalogHandler struct {
	catalogService service.CatalogService
	resolver       *identity.Resolver
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService, resolver *identity.Resolver) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, resolver: resolver}
}

// Categories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Category
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalogService.Categories(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Photos godoc
// @Summary List photos, optionally of one category
// @Description Photos carry liked=true for the caller's favorites when a valid token is sent.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param categoryId query int false "Category ID"
// @Success 200 {array} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos [get]
func (h *CatalogHandler) Photos(c echo.Context) error {
	var categoryID *uint
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := parseID(raw, "categoryId")
		if err != nil {
			return respondError(err)
		}
		categoryID = &id
	}

	ctx := c.Request().Context()
	caller := h.resolver.Optional(ctx, claimsFrom(c))
	photos, err := h.catalogService.Photos(ctx, categoryID, caller)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photos)
}

// Photo godoc
// @Summary Get a photo
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{id} [get]
func (h *CatalogHandler) Photo(c echo.Context) error {
	photoID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return respondError(err)
	}

	ctx := c.Request().Context()
	caller := h.resolver.Optional(ctx, claimsFrom(c))
	photo, err := h.catalogService.Photo(ctx, photoID, caller)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photo)
}

// Favs godoc
// @Summary List the caller's favorite photos
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Photo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favs [get]
func (h *CatalogHandler) Favs(c echo.Context) error {
	ctx := c.Request().Context()
	caller, err := h.resolver.Require(ctx, claimsFrom(c))
	if err != nil {
		return respondError(err)
	}

	photos, err := h.catalogService.Favs(ctx, caller)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, photos)
}
