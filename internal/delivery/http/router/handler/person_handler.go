package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"persons/internal/delivery/http/response"
	"persons/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultListLimit  = 20
	defaultListOffset = 0
)

// PersonHandler holds dependencies for person-related handlers.
type PersonHandler struct {
	uc     usecase.PersonUsecase
	logger *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(uc usecase.PersonUsecase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /persons.
func (h *PersonHandler) Create(c echo.Context) error {
	var input usecase.CreatePersonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Person created successfully")
}

// Get handles GET /persons/:id.
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Person id must be a positive integer")
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List handles GET /persons with limit/offset pagination.
func (h *PersonHandler) List(c echo.Context) error {
	input := usecase.ListPersonsInput{
		Limit:  defaultListLimit,
		Offset: defaultListOffset,
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_PAGINATION", "limit must be an integer")
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_PAGINATION", "offset must be an integer")
		}
		input.Offset = offset
	}

	output, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update handles PUT /persons/:id with a partial payload.
func (h *PersonHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Person id must be a positive integer")
	}

	var input usecase.UpdatePersonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Person updated successfully")
}

// UpdateCEP handles PATCH /persons/:id/cep, the address-only update.
func (h *PersonHandler) UpdateCEP(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Person id must be a positive integer")
	}

	var input usecase.UpdateCEPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cep payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateCEP(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Person address updated successfully")
}

// Delete handles DELETE /persons/:id.
func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Person id must be a positive integer")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":      id,
		"deleted": true,
	}, "Person deleted successfully")
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}

	return id, nil
}
