package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fincalc/internal/domain/validation"
)

// respondError maps use-case errors to HTTP responses.
func respondError(c echo.Context, err error) error {
	if ve, ok := validation.As(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, fromValidationError(ve))
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "request canceled"})
	}
	log.Printf("calculation failed on %s: %v", c.Path(), err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not render chart"})
}

// wantsReset reports whether the submitted form carries a "reset" field.
func wantsReset(c echo.Context) bool {
	params, err := c.FormParams()
	if err != nil {
		return false
	}
	return params.Has("reset")
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
