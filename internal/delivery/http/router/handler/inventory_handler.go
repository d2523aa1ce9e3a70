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

// InventoryHandler holds dependencies for inventory-related handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every item, or a single item resolved by its natural
// key when a code or barcode parameter is present.
func (h *InventoryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if code := c.QueryParam("code"); code != "" {
		item, err := h.uc.ByProductCode(ctx, code)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, item, "")
	}

	if barcode := c.QueryParam("barcode"); barcode != "" {
		item, err := h.uc.ByBarcode(ctx, barcode)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, item, "")
	}

	return response.Success(c, http.StatusOK, h.uc.List(ctx), "")
}

// Get returns one item by id.
func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// Create registers a new inventory item.
func (h *InventoryHandler) Create(c echo.Context) error {
	var input *entity.InventoryItem
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	created, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Item created")
}

// Update applies a partial update to an item.
func (h *InventoryHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	updated, err := h.uc.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Item updated")
}

// Delete removes an item.
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted")
}

// Search filters items by the given criteria.
func (h *InventoryHandler) Search(c echo.Context) error {
	criteria := map[string]any{}
	if err := c.Bind(&criteria); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search criteria")
	}

	return response.Success(c, http.StatusOK, h.uc.Search(c.Request().Context(), criteria), "")
}

// AdjustStock shifts an item's stock. A delta that would push stock
// below zero yields a conflict from the usecase.
func (h *InventoryHandler) AdjustStock(c echo.Context) error {
	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock adjustment")
	}

	updated, err := h.uc.AdjustStock(c.Request().Context(), c.Param("id"), input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Stock adjusted")
}

// LowStock returns items at or below their minimum threshold.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.LowStock(c.Request().Context()), "")
}
