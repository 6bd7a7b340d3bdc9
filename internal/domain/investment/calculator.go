package investment

import (
	"math"

	"fincalc/pkg/money"
)

// ValueAt is the projected value after n years. Growth compounds annually;
// monthly deposits are treated as one yearly contribution of 12x the amount.
func ValueAt(in Input, n int) float64 {
	rate := in.AnnualRate / 100
	growth := math.Pow(1+rate, float64(n))
	deposits := in.MonthlyDeposit * ((growth - 1) / rate) * 12
	return in.InitialDeposit*growth + deposits
}

// Project computes the final value and the year-by-year trajectory. Each
// year is evaluated from scratch with ValueAt so the last entry matches the
// total exactly before rounding.
func Project(in Input) Result {
	series := make([]float64, 0, in.Years)
	for y := 1; y <= in.Years; y++ {
		series = append(series, ValueAt(in, y))
	}

	total := money.Round2(ValueAt(in, in.Years))
	deposits := money.Round2(in.InitialDeposit + in.MonthlyDeposit*float64(in.Years)*12)

	return Result{
		Total:         total,
		TotalDeposits: deposits,
		Profit:        money.Sub2(total, deposits),
		Years:         in.Years,
		YearlySeries:  series,
	}
}
