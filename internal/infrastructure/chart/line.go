package chart

import (
	"errors"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"

	chartDomain "fincalc/internal/domain/chart"
	"fincalc/pkg/money"
)

const maxXTicks = 10

func (r *Renderer) line(spec chartDomain.Spec) (gochart.Chart, error) {
	n := len(spec.Series)
	if n == 0 {
		return gochart.Chart{}, errors.New("line chart needs at least one value")
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	style := gochart.Style{StrokeColor: r.brand, StrokeWidth: 2}
	if n == 1 {
		// a single point has no segment to stroke
		style.DotColor = r.brand
		style.DotWidth = 4
	}

	return gochart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		XAxis: gochart.XAxis{
			Name:  spec.XLabel,
			Range: xRange(n),
			Ticks: yearTicks(n),
		},
		YAxis: gochart.YAxis{
			Name:           spec.YLabel,
			Range:          yRange(spec.Series),
			ValueFormatter: thousands,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    spec.YLabel,
				Style:   style,
				XValues: xs,
				YValues: spec.Series,
			},
		},
	}, nil
}

func xRange(n int) *gochart.ContinuousRange {
	if n == 1 {
		return &gochart.ContinuousRange{Min: 0, Max: 2}
	}
	return &gochart.ContinuousRange{Min: 1, Max: float64(n)}
}

// yRange is nil (auto) unless the series is flat, which go-chart refuses
// to scale.
func yRange(series []float64) gochart.Range {
	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi > lo {
		return nil
	}
	if hi == 0 {
		return &gochart.ContinuousRange{Min: 0, Max: 1}
	}
	return &gochart.ContinuousRange{Min: math.Min(0, lo), Max: math.Abs(hi) * 1.1}
}

func yearTicks(n int) []gochart.Tick {
	step := (n + maxXTicks - 1) / maxXTicks
	ticks := make([]gochart.Tick, 0, maxXTicks+1)
	for y := 1; y <= n; y += step {
		ticks = append(ticks, gochart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	if last := ticks[len(ticks)-1]; last.Value != float64(n) {
		ticks = append(ticks, gochart.Tick{Value: float64(n), Label: strconv.Itoa(n)})
	}
	return ticks
}

func thousands(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return money.Group(f)
}
