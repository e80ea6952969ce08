package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rockschool/internal/auth"
	"rockschool/internal/errors"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{jwtService: jwtService}
}

// TokenRequest represents a token issuance request.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse represents an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken godoc
// @Summary Issue a bearer token for an identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.jwtService.Issue(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue token",
			Code:  "TOKEN_ISSUE_FAILED",
		})
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
