package chart

import (
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	chartDomain "fincalc/internal/domain/chart"
)

// explodeStroke separates adjacent slices with a white gap.
const explodeStroke = 4

func (r *Renderer) pie(spec chartDomain.Spec) gochart.PieChart {
	pct := chartDomain.Percent(spec.Slices)
	ramp := r.ramp(len(spec.Slices))

	values := make([]gochart.Value, 0, len(spec.Slices))
	for i, s := range spec.Slices {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s %.1f%%", s.Label, pct[i]),
			Value: s.Value,
			Style: gochart.Style{
				FillColor:   ramp[i],
				FontColor:   drawing.ColorWhite,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: explodeStroke,
			},
		})
	}

	return gochart.PieChart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		Values:     values,
	}
}

// ramp runs from the brand color toward a darker shade of it.
func (r *Renderer) ramp(n int) []drawing.Color {
	out := make([]drawing.Color, n)
	for i := range out {
		out[i] = shade(r.brand, 0.35*float64(i)/float64(max(n-1, 1)))
	}
	return out
}
