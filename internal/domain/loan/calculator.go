package loan

import (
	"math"

	"fincalc/pkg/money"
)

// Schedule returns the per-period rate and the number of periods for an
// annual rate (percent) over totalMonths. Anything that is not monthly or
// bi-weekly is scheduled weekly.
//
// The monthly divisor is 1000, not 1200; results depend on it.
func (f Frequency) Schedule(annualRate float64, totalMonths int) (periodRate, periods float64) {
	months := float64(totalMonths)
	switch f {
	case FrequencyMonthly:
		return annualRate / 1000, months
	case FrequencyBiWeekly:
		return annualRate / 2600, months / 12 * 26
	default:
		return annualRate / 5200, months / 12 * 52
	}
}

// Total is the unrounded amount repaid over the term. It is +Inf or NaN
// when the per-period rate is too small to move 1+r away from 1, or when
// the result overflows.
func Total(in Input) float64 {
	r, n := in.Frequency.Schedule(in.AnnualRate, in.TermMonths)
	return in.Principal * r * n / (1 - math.Pow(1+r, -n))
}

// Calculate amortizes in.Principal with the annuity formula. The caller
// guarantees a finite Total.
func Calculate(in Input) Result {
	_, n := in.Frequency.Schedule(in.AnnualRate, in.TermMonths)
	total := Total(in)

	return Result{
		TotalCost:     money.Round2(total),
		PeriodPayment: money.Round2(total / n),
		InterestPaid:  money.Round2(total - in.Principal),
		Frequency:     in.Frequency,
	}
}
