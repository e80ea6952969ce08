package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rockschool/internal/errors"
	"rockschool/internal/model"
	"rockschool/internal/service"
)

// CartHandler bundles cart HTTP handlers.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a handler layer.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// GetCart godoc
// @Summary List cart items for a user (self only)
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param email query string true "Owner email"
// @Success 200 {array} model.CartItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classCart [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []model.CartItem{})
	}

	items, err := h.svc.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// AddItem godoc
// @Summary Add a class to a user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body model.CartItem true "Cart item"
// @Success 201 {object} model.CartItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /classCart [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	c.Logger().Infof("cart item: %+v", item)

	created, err := h.svc.AddItem(c.Request().Context(), &item)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// RemoveItem godoc
// @Summary Remove a cart item by id
// @Tags cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /classCart/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.svc.RemoveItem(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}
