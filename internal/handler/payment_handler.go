package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rockschool/internal/errors"
	"rockschool/internal/service"
)

// PaymentHandler handles payment intent and settlement endpoints.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// IntentRequest represents a payment intent request.
type IntentRequest struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// IntentResponse carries the provider's client secret.
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest represents a completed payment to settle.
type PaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"gte=0"`
	TransactionID string   `json:"transactionId"`
	CartItems     []string `json:"cartItems" validate:"required,min=1"`
}

// CreateIntent godoc
// @Summary Request a charge authorization from the payment provider
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IntentRequest true "Price"
// @Success 200 {object} IntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req IntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clientSecret, err := h.svc.CreateIntent(c.Request().Context(), decimal.NewFromFloat(req.Price))
	if err != nil {
		if err == errors.ErrInvalidPrice {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "PROVIDER_ERROR",
		})
	}

	return c.JSON(http.StatusOK, IntentResponse{ClientSecret: clientSecret})
}

// RecordPayment godoc
// @Summary Record a completed payment and clear the settled cart items
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} service.SettlementResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(req.CartItems))
	for _, raw := range req.CartItems {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid cart item id",
				Code:  "INVALID_UUID",
			})
		}
		ids = append(ids, id)
	}

	result, err := h.svc.Settle(
		c.Request().Context(),
		req.Email,
		decimal.NewFromFloat(req.Price),
		req.TransactionID,
		ids,
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "SETTLEMENT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, result)
}
