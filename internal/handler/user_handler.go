package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rockschool/internal/errors"
	"rockschool/internal/model"
	"rockschool/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUser godoc
// @Summary Create user, no-op if the email already exists
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.User true "User payload"
// @Success 200 {object} map[string]string
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if user.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	created, fresh, err := h.svc.CreateUser(c.Request().Context(), &user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !fresh {
		return c.JSON(http.StatusOK, map[string]string{"message": "user already exists"})
	}
	return c.JSON(http.StatusCreated, created)
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.svc.DeleteUser(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// CheckAdmin godoc
// @Summary Report whether the identity has the admin role (self only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")

	isAdmin, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"admin": isAdmin})
}

// GrantAdmin godoc
// @Summary Grant the admin role to a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /users/admin/{id} [patch]
func (h *UserHandler) GrantAdmin(c echo.Context) error {
	return h.grantRole(c, model.RoleAdmin)
}

// GrantInstructor godoc
// @Summary Grant the instructor role to a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /users/instructor/{id} [patch]
func (h *UserHandler) GrantInstructor(c echo.Context) error {
	return h.grantRole(c, model.RoleInstructor)
}

func (h *UserHandler) grantRole(c echo.Context, role string) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	modified, err := h.svc.GrantRole(c.Request().Context(), uint(id), role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"modifiedCount": modified})
}
