package handler

import (
	"log/slog"
	"net/http"

	"salepoint/internal/delivery/http/response"
	"salepoint/internal/domain/entity"
	"salepoint/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SalesHandler holds dependencies for sale-related handlers.
type SalesHandler struct {
	uc     usecase.SalesUsecase
	logger *slog.Logger
}

// NewSalesHandler is the constructor for SalesHandler, injected by Fx.
func NewSalesHandler(uc usecase.SalesUsecase, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every sale, optionally filtered by customer.
func (h *SalesHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if customerID := c.QueryParam("customerId"); customerID != "" {
		return response.Success(c, http.StatusOK, h.uc.ByCustomer(ctx, customerID), "")
	}

	return response.Success(c, http.StatusOK, h.uc.List(ctx), "")
}

// Get returns one sale by id.
func (h *SalesHandler) Get(c echo.Context) error {
	sale, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "")
}

// Create registers a sale and runs its customer and stock cascade.
func (h *SalesHandler) Create(c echo.Context) error {
	var input *entity.Sale
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	created, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Sale registered")
}

// Delete reverses a sale and its cascade.
func (h *SalesHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale reversed")
}
