package chart

import "fmt"

type Kind string

const (
	KindPie  Kind = "pie"
	KindLine Kind = "line"
)

// BrandColor is the hex color every chart is drawn in.
const BrandColor = "198754"

type Slice struct {
	Label string
	Value float64
}

// Spec describes one chart. Pie charts use Slices; line charts use Series
// plotted against X = 1..len(Series).
type Spec struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
	Slices []Slice
	Series []float64
}

// Pie is the principal-versus-interest breakdown of a loan.
func Pie(principal, interest float64) Spec {
	return Spec{
		Kind: KindPie,
		Slices: []Slice{
			{Label: "Principal", Value: principal},
			{Label: "Interest", Value: interest},
		},
	}
}

// Line is the yearly trajectory of an investment.
func Line(series []float64, years int) Spec {
	return Spec{
		Kind:   KindLine,
		Title:  fmt.Sprintf("Returns over %d years", years),
		XLabel: "Years",
		YLabel: "Returns",
		Series: series,
	}
}

// Image is a base64 (std encoding) PNG.
type Image string

func (i Image) DataURI() string { return "data:image/png;base64," + string(i) }

// Percent returns each slice's share of the total, in percent.
func Percent(slices []Slice) []float64 {
	var sum float64
	for _, s := range slices {
		sum += s.Value
	}
	out := make([]float64, len(slices))
	if sum == 0 {
		return out
	}
	for i, s := range slices {
		out[i] = s.Value / sum * 100
	}
	return out
}
