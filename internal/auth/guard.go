package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"rockschool/internal/errors"
)

// RoleLookup reads the persisted role for an identity. Implementations must
// not cache; the guard relies on fresh reads so a role revoked mid-session
// takes effect on the next call.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// ClaimsFrom returns the verified claims attached by the JWT middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireSelf allows the request only when the token identity matches the
// email supplied in the named path or query parameter. An empty parameter is
// passed through; parameter presence is the handler's concern.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthorized.Error(),
					Code:  "UNAUTHORIZED",
				})
			}
			email := c.Param(param)
			if email == "" {
				email = c.QueryParam(param)
			}
			if email != "" && claims.Email != email {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: errors.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// RequireRole allows the request only when the persisted role of the token
// identity equals role. The lookup happens on every call.
func RequireRole(lookup RoleLookup, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthorized.Error(),
					Code:  "UNAUTHORIZED",
				})
			}
			got, err := lookup.RoleByEmail(c.Request().Context(), claims.Email)
			if err != nil || got != role {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: errors.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
