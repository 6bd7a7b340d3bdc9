package investment

import (
	"math"

	domain "fincalc/internal/domain/investment"
	"fincalc/internal/domain/validation"
)

// MaxYears bounds the length of the yearly series.
const MaxYears = 100

const (
	msgDepositRequired = "You must enter a value greater than 0 for either Initial Deposit or Monthly Deposit."
	msgInitialInvalid  = "Initial deposit must be a number of 0 or more"
	msgMonthlyInvalid  = "Monthly deposit must be a number of 0 or more"
	msgRateRequired    = "You must enter an interest rate greater than 0."
	msgYearsRequired   = "You must enter a number of years greater than 0."
	msgYearsTooLong    = "The number of years cannot exceed 100"
	msgRateTooSmall    = "The interest rate is too small to project growth"
	msgOutOfRange      = "The projected value is too large to calculate"
)

// ParseForm turns a raw form into a projection input. Any returned error is
// a *validation.Error.
func ParseForm(f Form) (domain.Input, error) {
	var zero domain.Input

	if validation.Blank(f.InitialDeposit) && validation.Blank(f.MonthlyDeposit) {
		return zero, validation.New(validation.KindBothZero, "", msgDepositRequired)
	}
	if validation.Blank(f.InterestRate) {
		return zero, validation.New(validation.KindMissingField, "interestRate", msgRateRequired)
	}
	if validation.Blank(f.Years) {
		return zero, validation.New(validation.KindMissingField, "years", msgYearsRequired)
	}

	initial, err := depositOrZero(f.InitialDeposit, "initialDeposit", msgInitialInvalid)
	if err != nil {
		return zero, err
	}
	monthly, err := depositOrZero(f.MonthlyDeposit, "monthlyDeposit", msgMonthlyInvalid)
	if err != nil {
		return zero, err
	}
	if initial == 0 && monthly == 0 {
		return zero, validation.New(validation.KindBothZero, "", msgDepositRequired)
	}

	rate, ok := validation.Float(f.InterestRate)
	switch {
	case !ok || rate < 0:
		return zero, validation.New(validation.KindInvalidNumber, "interestRate", msgRateRequired)
	case rate == 0:
		// deposit growth divides by the rate
		return zero, validation.New(validation.KindArithmeticDomain, "interestRate", msgRateRequired)
	}

	years, ok := validation.Int(f.Years)
	if !ok || years <= 0 {
		return zero, validation.New(validation.KindInvalidNumber, "years", msgYearsRequired)
	}
	if years > MaxYears {
		return zero, validation.New(validation.KindInvalidNumber, "years", msgYearsTooLong)
	}

	// deposit growth (g-1)/rate collapses to 0 once 1+rate rounds to 1
	if 1+rate/100 == 1 {
		return zero, validation.New(validation.KindArithmeticDomain, "interestRate", msgRateTooSmall)
	}

	in := domain.Input{
		InitialDeposit: initial,
		MonthlyDeposit: monthly,
		AnnualRate:     rate,
		Years:          years,
	}
	// values grow with the year, so the last one bounds the series
	if v := domain.ValueAt(in, years); math.IsInf(v, 0) || math.IsNaN(v) {
		return zero, validation.New(validation.KindArithmeticDomain, "", msgOutOfRange)
	}
	return in, nil
}

func depositOrZero(raw, field, msg string) (float64, error) {
	if validation.Blank(raw) {
		return 0, nil
	}
	v, ok := validation.Float(raw)
	if !ok || v < 0 {
		return 0, validation.New(validation.KindInvalidNumber, field, msg)
	}
	return v, nil
}
