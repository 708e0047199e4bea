package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"petgram/internal/auth"
	"petgram/internal/errors"
)

// ClaimsContextKey is where the JWT middleware stores validated claims.
const ClaimsContextKey = "user"

// claimsFrom returns the validated token claims of the request, or nil for
// requests without a usable token.
func claimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsContextKey).(*auth.Claims)
	return claims
}

// respondError converts a domain error into an echo HTTP error.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func parseID(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errors.ErrInvalidInput, name)
	}
	return uint(id), nil
}
