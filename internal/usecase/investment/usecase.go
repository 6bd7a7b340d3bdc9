package investment

import (
	"context"
	"fmt"

	"fincalc/internal/domain/chart"
	domain "fincalc/internal/domain/investment"
	"fincalc/pkg/money"
)

type ChartRenderer interface {
	Render(spec chart.Spec) (chart.Image, error)
}

type Usecase struct{ charts ChartRenderer }

func NewUsecase(r ChartRenderer) *Usecase { return &Usecase{charts: r} }

// Calculate validates the form, projects the investment and renders the
// yearly trajectory.
func (u *Usecase) Calculate(ctx context.Context, f Form) (*InvestDTO, error) {
	in, err := ParseForm(f)
	if err != nil {
		return nil, err
	}

	res := domain.Project(in)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := u.charts.Render(chart.Line(res.YearlySeries, res.Years))
	if err != nil {
		return nil, fmt.Errorf("investment chart: %w", err)
	}

	return &InvestDTO{
		Total:           money.Format(res.Total),
		Years:           res.Years,
		TotalDeposits:   money.Format(res.TotalDeposits),
		Profit:          money.Format(res.Profit),
		ReturnsEachYear: res.YearlySeries,
		Chart:           string(img),
		ChartSrc:        img.DataURI(),
	}, nil
}
