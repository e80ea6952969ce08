package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rockschool/internal/auth"
	"rockschool/internal/errors"
	"rockschool/internal/model"
	"rockschool/internal/service"
)

// CatalogHandler bundles class, instructor, and review HTTP handlers.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a handler layer.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListClasses godoc
// @Summary List class listings sorted by enrollment, descending
// @Tags catalog
// @Produce json
// @Success 200 {array} model.ClassListing
// @Router /classes [get]
func (h *CatalogHandler) ListClasses(c echo.Context) error {
	listings, err := h.svc.ListClasses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

// GetClass godoc
// @Summary Get a class listing by id
// @Tags catalog
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} model.ClassListing
// @Failure 404 {object} errors.ErrorResponse
// @Router /classes/{id} [get]
func (h *CatalogHandler) GetClass(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	listing, err := h.svc.GetClass(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listing)
}

// MyClasses godoc
// @Summary List class listings owned by an instructor (self only)
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param email query string true "Instructor email"
// @Success 200 {array} model.ClassListing
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/mine [get]
func (h *CatalogHandler) MyClasses(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []model.ClassListing{})
	}

	listings, err := h.svc.ListClassesByInstructor(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

// CreateClass godoc
// @Summary Create a class listing (instructor only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body model.ClassListing true "Class listing"
// @Success 201 {object} model.ClassListing
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes [post]
func (h *CatalogHandler) CreateClass(c echo.Context) error {
	var listing model.ClassListing
	if err := c.Bind(&listing); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if claims, ok := auth.ClaimsFrom(c); ok && listing.InstructorEmail == "" {
		listing.InstructorEmail = claims.Email
	}

	created, err := h.svc.CreateClass(c.Request().Context(), &listing)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// ReplaceClass godoc
// @Summary Replace a class listing (owner only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param listing body model.ClassListing true "Class listing"
// @Success 200 {object} model.ClassListing
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/{id} [put]
func (h *CatalogHandler) ReplaceClass(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var listing model.ClassListing
	if err := c.Bind(&listing); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	listing.ID = id

	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}

	if err := h.svc.ReplaceClass(c.Request().Context(), claims.Email, &listing); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listing)
}

// DeleteClass godoc
// @Summary Delete a class listing (owner only)
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/{id} [delete]
func (h *CatalogHandler) DeleteClass(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}

	deleted, err := h.svc.DeleteClass(c.Request().Context(), claims.Email, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// ListInstructors godoc
// @Summary List instructors sorted by enrollment, descending
// @Tags catalog
// @Produce json
// @Success 200 {array} model.InstructorListing
// @Router /instructors [get]
func (h *CatalogHandler) ListInstructors(c echo.Context) error {
	listings, err := h.svc.ListInstructors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

// ListReviews godoc
// @Summary List reviews
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Review
// @Router /review [get]
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	reviews, err := h.svc.ListReviews(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}
