package loan

import (
	"context"
	"fmt"

	"fincalc/internal/domain/chart"
	domain "fincalc/internal/domain/loan"
)

type ChartRenderer interface {
	Render(spec chart.Spec) (chart.Image, error)
}

type Usecase struct{ charts ChartRenderer }

func NewUsecase(r ChartRenderer) *Usecase { return &Usecase{charts: r} }

// Calculate validates the form, amortizes the loan and renders the
// principal/interest breakdown. Validation errors come back unwrapped.
func (u *Usecase) Calculate(ctx context.Context, f Form) (*LoanDTO, error) {
	in, err := ParseForm(f)
	if err != nil {
		return nil, err
	}

	res := domain.Calculate(in)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := u.charts.Render(chart.Pie(in.Principal, res.InterestPaid))
	if err != nil {
		return nil, fmt.Errorf("loan chart: %w", err)
	}

	return &LoanDTO{
		TotalLoanCost: res.TotalCost,
		PeriodPayment: res.PeriodPayment,
		InterestPaid:  res.InterestPaid,
		PeriodType:    string(res.Frequency),
		Chart:         string(img),
		ChartSrc:      img.DataURI(),
	}, nil
}
