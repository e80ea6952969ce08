package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rockschool/internal/model"
	"rockschool/internal/service"
)

// SeedHandler handles demo catalog seeding.
type SeedHandler struct {
	catalog service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalog service.CatalogService) *SeedHandler {
	return &SeedHandler{catalog: catalog}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedCatalog godoc
// @Summary Seed demo class listings
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} map[string]string
// @Router /seed/catalog [get]
func (h *SeedHandler) SeedCatalog(c echo.Context) error {
	listings := []model.ClassListing{
		{
			Name:             "Guitar Fundamentals",
			AvailableSeats:   12,
			Price:            decimal.NewFromFloat(49.99),
			InstructorName:   "Marty Schwartz",
			InstructorEmail:  "marty@schoolofrock.example",
			EnrolledStudents: 20,
		},
		{
			Name:             "Drum Grooves",
			AvailableSeats:   8,
			Price:            decimal.NewFromFloat(59.99),
			InstructorName:   "Nina Ramirez",
			InstructorEmail:  "nina@schoolofrock.example",
			EnrolledStudents: 5,
		},
		{
			Name:             "Vocal Coaching",
			AvailableSeats:   15,
			Price:            decimal.NewFromFloat(39.99),
			InstructorName:   "Lena Hart",
			InstructorEmail:  "lena@schoolofrock.example",
			EnrolledStudents: 1,
		},
	}

	count := 0
	for i := range listings {
		if _, err := h.catalog.CreateClass(c.Request().Context(), &listings[i]); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": err.Error(),
			})
		}
		count++
	}

	return c.JSON(http.StatusOK, SeedResponse{
		Message: "Catalog seeded successfully",
		Count:   count,
	})
}
