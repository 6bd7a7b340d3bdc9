package chart

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	chartDomain "fincalc/internal/domain/chart"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	// fixed padding around the plot area, in pixels
	padding = 25
)

var errUnknownKind = errors.New("unknown chart kind")

// Renderer rasterizes chart specs to base64 PNG. It holds no per-call state
// and the same spec always yields the same bytes.
type Renderer struct {
	width  int
	height int
	brand  drawing.Color
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{
		width:  width,
		height: height,
		brand:  drawing.ColorFromHex(chartDomain.BrandColor),
	}
}

func (r *Renderer) Render(spec chartDomain.Spec) (chartDomain.Image, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := r.draw(spec, buf); err != nil {
		return "", fmt.Errorf("render %s chart: %w", spec.Kind, err)
	}
	return chartDomain.Image(base64.StdEncoding.EncodeToString(buf.B)), nil
}

func (r *Renderer) draw(spec chartDomain.Spec, w io.Writer) error {
	switch spec.Kind {
	case chartDomain.KindPie:
		return r.pie(spec).Render(gochart.PNG, w)
	case chartDomain.KindLine:
		c, err := r.line(spec)
		if err != nil {
			return err
		}
		return c.Render(gochart.PNG, w)
	default:
		return fmt.Errorf("%w %q", errUnknownKind, spec.Kind)
	}
}

func (r *Renderer) background() gochart.Style {
	return gochart.Style{
		FillColor: drawing.ColorWhite,
		Padding:   gochart.Box{Top: padding, Left: padding, Right: padding, Bottom: padding},
	}
}

// shade moves c toward black by f (0..1).
func shade(c drawing.Color, f float64) drawing.Color {
	k := 1 - f
	return drawing.Color{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
