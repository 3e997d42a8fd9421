package handler

import (
	"log/slog"
	"net/http"

	"persons/internal/delivery/http/response"
	"persons/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CEPHandler exposes the lookup passthrough endpoint.
type CEPHandler struct {
	uc     usecase.LookupUsecase
	logger *slog.Logger
}

// NewCEPHandler is the constructor for CEPHandler, injected by Fx.
func NewCEPHandler(uc usecase.LookupUsecase, logger *slog.Logger) *CEPHandler {
	return &CEPHandler{
		uc:     uc,
		logger: logger,
	}
}

// Resolve handles GET /cep/:code.
func (h *CEPHandler) Resolve(c echo.Context) error {
	output, err := h.uc.Resolve(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
