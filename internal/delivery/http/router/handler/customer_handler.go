// Package handler contains the HTTP handlers for the application.
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

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every customer.
func (h *CustomerHandler) List(c echo.Context) error {
	// The phone filter is the common point-of-sale lookup, so it gets
	// a query parameter instead of a search body.
	if phone := c.QueryParam("phone"); phone != "" {
		return response.Success(c, http.StatusOK, h.uc.ByPhone(c.Request().Context(), phone), "")
	}

	return response.Success(c, http.StatusOK, h.uc.List(c.Request().Context()), "")
}

// Get returns one customer by id.
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// Create registers a new customer.
func (h *CustomerHandler) Create(c echo.Context) error {
	var input *entity.Customer
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	created, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Customer created")
}

// Update applies a partial update to a customer.
func (h *CustomerHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	updated, err := h.uc.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Customer updated")
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted")
}

// Search filters customers by the given criteria.
func (h *CustomerHandler) Search(c echo.Context) error {
	criteria := map[string]any{}
	if err := c.Bind(&criteria); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search criteria")
	}

	return response.Success(c, http.StatusOK, h.uc.Search(c.Request().Context(), criteria), "")
}

// AdjustDebt shifts the customer's outstanding debt.
func (h *CustomerHandler) AdjustDebt(c echo.Context) error {
	var input struct {
		Delta float64 `json:"delta"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid debt adjustment")
	}

	updated, err := h.uc.AdjustDebt(c.Request().Context(), c.Param("id"), input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Debt adjusted")
}
