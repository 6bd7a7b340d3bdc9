package loan

import (
	"math"
	"strings"

	domain "fincalc/internal/domain/loan"
	"fincalc/internal/domain/validation"
)

// MaxTermMonths caps the loan term at 100 years.
const MaxTermMonths = 1200

const (
	msgAmountRequired = "Loan amount is required"
	msgAmountInvalid  = "Loan amount must be a number greater than 0"
	msgTermRequired   = "You must enter a minimum of 1 month or 1 year with a value greater than 0."
	msgYearsInvalid   = "Years must be a whole number of 0 or more"
	msgMonthsInvalid  = "Months must be a whole number of 0 or more"
	msgTermTooLong    = "The loan term cannot exceed 100 years"
	msgRateRequired   = "Please enter an interest rate greater than 0"
	msgFreqRequired   = "Please select your payment frequency"
	msgTermTooShort   = "The loan term is too short for the selected payment frequency"
	msgRateTooSmall   = "The interest rate is too small to calculate a repayment"
	msgOutOfRange     = "The repayment is too large to calculate"
)

// ParseForm turns a raw form into a calculator input. It never calls the
// calculator; any returned error is a *validation.Error.
func ParseForm(f Form) (domain.Input, error) {
	var zero domain.Input

	if validation.Blank(f.LoanAmount) {
		return zero, validation.New(validation.KindMissingField, "loanAmount", msgAmountRequired)
	}
	if validation.Blank(f.Years) && validation.Blank(f.Months) {
		return zero, validation.New(validation.KindBothZero, "", msgTermRequired)
	}
	if validation.Blank(f.InterestRate) {
		return zero, validation.New(validation.KindMissingField, "interestRate", msgRateRequired)
	}
	if validation.Blank(f.PayFrequency) {
		return zero, validation.New(validation.KindMissingField, "payFrequency", msgFreqRequired)
	}

	amount, ok := validation.Float(f.LoanAmount)
	if !ok || amount <= 0 {
		return zero, validation.New(validation.KindInvalidNumber, "loanAmount", msgAmountInvalid)
	}

	rate, ok := validation.Float(f.InterestRate)
	switch {
	case !ok || rate < 0:
		return zero, validation.New(validation.KindInvalidNumber, "interestRate", msgRateRequired)
	case rate == 0:
		return zero, validation.New(validation.KindArithmeticDomain, "interestRate", msgRateRequired)
	}

	years, err := wholeOrZero(f.Years, "years", msgYearsInvalid)
	if err != nil {
		return zero, err
	}
	months, err := wholeOrZero(f.Months, "months", msgMonthsInvalid)
	if err != nil {
		return zero, err
	}
	if years > MaxTermMonths/12 || months > MaxTermMonths {
		return zero, validation.New(validation.KindInvalidNumber, "years", msgTermTooLong)
	}
	total := years*12 + months
	if total == 0 {
		return zero, validation.New(validation.KindBothZero, "", msgTermRequired)
	}
	if total > MaxTermMonths {
		return zero, validation.New(validation.KindInvalidNumber, "years", msgTermTooLong)
	}

	in := domain.Input{
		Principal:  amount,
		AnnualRate: rate,
		Frequency:  domain.Frequency(strings.TrimSpace(f.PayFrequency)),
		TermMonths: total,
	}
	r, n := in.Frequency.Schedule(in.AnnualRate, in.TermMonths)
	if r <= 0 || n <= 0 {
		return zero, validation.New(validation.KindArithmeticDomain, "", msgTermTooShort)
	}
	// the annuity denominator 1-(1+r)^-n vanishes
	if 1+r == 1 {
		return zero, validation.New(validation.KindArithmeticDomain, "interestRate", msgRateTooSmall)
	}
	if t := domain.Total(in); math.IsInf(t, 0) || math.IsNaN(t) {
		return zero, validation.New(validation.KindArithmeticDomain, "", msgOutOfRange)
	}
	return in, nil
}

func wholeOrZero(raw, field, msg string) (int, error) {
	if validation.Blank(raw) {
		return 0, nil
	}
	n, ok := validation.Int(raw)
	if !ok || n < 0 {
		return 0, validation.New(validation.KindInvalidNumber, field, msg)
	}
	return n, nil
}
