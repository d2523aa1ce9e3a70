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

// VoucherHandler holds dependencies for voucher-related handlers.
type VoucherHandler struct {
	uc     usecase.VoucherUsecase
	logger *slog.Logger
}

// NewVoucherHandler is the constructor for VoucherHandler, injected by Fx.
func NewVoucherHandler(uc usecase.VoucherUsecase, logger *slog.Logger) *VoucherHandler {
	return &VoucherHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns vouchers, filtered by code or customer phone when given.
func (h *VoucherHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if code := c.QueryParam("code"); code != "" {
		voucher, err := h.uc.ByCode(ctx, code)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, voucher, "")
	}

	if phone := c.QueryParam("phone"); phone != "" {
		return response.Success(c, http.StatusOK, h.uc.ByCustomerPhone(ctx, phone), "")
	}

	return response.Success(c, http.StatusOK, h.uc.List(ctx), "")
}

// Get returns one voucher by id.
func (h *VoucherHandler) Get(c echo.Context) error {
	voucher, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, voucher, "")
}

// Create issues a new voucher.
func (h *VoucherHandler) Create(c echo.Context) error {
	var input *entity.Voucher
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher input")
	}

	created, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Voucher issued")
}

// Delete removes a voucher.
func (h *VoucherHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Voucher deleted")
}

// Use redeems an active, unexpired voucher.
func (h *VoucherHandler) Use(c echo.Context) error {
	voucher, err := h.uc.Use(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, voucher, "Voucher redeemed")
}

// Cancel voids an active voucher.
func (h *VoucherHandler) Cancel(c echo.Context) error {
	voucher, err := h.uc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, voucher, "Voucher cancelled")
}

// Expired returns vouchers past their expiry date.
func (h *VoucherHandler) Expired(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Expired(c.Request().Context()), "")
}

// QR renders the voucher code as a PNG image.
func (h *VoucherHandler) QR(c echo.Context) error {
	png, err := h.uc.QR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
