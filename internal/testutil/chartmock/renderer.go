package chartmock

import (
	"errors"

	"fincalc/internal/domain/chart"
)

// Image is what Renderer returns when RenderFn is nil.
const Image chart.Image = "iVBORw0KGgo="

// Renderer is a function-backed mock of the use-case ChartRenderer. Every
// spec it receives is recorded in Calls.
type Renderer struct {
	RenderFn func(spec chart.Spec) (chart.Image, error)
	Calls    []chart.Spec
}

func (m *Renderer) Render(spec chart.Spec) (chart.Image, error) {
	m.Calls = append(m.Calls, spec)
	if m.RenderFn != nil {
		return m.RenderFn(spec)
	}
	return Image, nil
}

// Failing returns a Renderer whose every call fails with err (or a generic
// error when err is nil).
func Failing(err error) *Renderer {
	if err == nil {
		err = errors.New("render failed")
	}
	return &Renderer{RenderFn: func(chart.Spec) (chart.Image, error) { return "", err }}
}
