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

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	guard  usecase.GuardUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, guard usecase.GuardUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		guard:  guard,
		logger: logger,
	}
}

// Login establishes a session for the given user snapshot.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *entity.SessionUser
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	token, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Login successful")
}

// Logout clears the session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Current returns the stored session when it is still valid.
func (h *SessionHandler) Current(c echo.Context) error {
	session, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// Check runs the guard's validity check once and reports the result.
func (h *SessionHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{
		"valid": h.guard.CheckNow(),
		"armed": h.guard.Armed(),
	}, "")
}
