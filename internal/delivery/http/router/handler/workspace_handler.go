package handler

import (
	"log/slog"
	"net/http"

	"salepoint/internal/delivery/http/response"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkspaceHandler holds dependencies for workspace-related handlers.
type WorkspaceHandler struct {
	uc     usecase.WorkspaceUsecase
	logger *slog.Logger
}

// NewWorkspaceHandler is the constructor for WorkspaceHandler, injected by Fx.
func NewWorkspaceHandler(uc usecase.WorkspaceUsecase, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Businesses returns the cached business list.
func (h *WorkspaceHandler) Businesses(c echo.Context) error {
	businesses, err := h.uc.Businesses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Select marks a business as the active workspace.
func (h *WorkspaceHandler) Select(c echo.Context) error {
	business, err := h.uc.Select(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Workspace selected")
}

// Selected returns the active business.
func (h *WorkspaceHandler) Selected(c echo.Context) error {
	business := h.uc.Selected()
	if business == nil {
		return errors.WithStack(domainerrors.ErrBusinessNotFound)
	}

	return response.Success(c, http.StatusOK, business, "")
}
