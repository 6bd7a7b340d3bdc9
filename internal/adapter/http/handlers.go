package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

type calculatorLink struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Index lists the calculators.
func (h *Handler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"calculators": []calculatorLink{
			{Name: "loan", Path: "/loan"},
			{Name: "invest", Path: "/invest"},
		},
	})
}

// formDescription is the JSON stand-in for an empty, unsubmitted form.
type formDescription struct {
	Submit      bool     `json:"submit"`
	Fields      []string `json:"fields"`
	Frequencies []string `json:"frequencies,omitempty"`
}
