package loan

import (
	"errors"
	"math"
	"testing"

	domain "fincalc/internal/domain/loan"
	"fincalc/internal/domain/validation"
)

func validForm() Form {
	return Form{LoanAmount: "10000", Years: "1", Months: "", InterestRate: "5", PayFrequency: "monthly"}
}

func TestParseForm_Valid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
		want   domain.Input
	}{
		{"years only", func(f *Form) {}, domain.Input{Principal: 10000, AnnualRate: 5, Frequency: domain.FrequencyMonthly, TermMonths: 12}},
		{"months only", func(f *Form) { f.Years = ""; f.Months = "18" }, domain.Input{Principal: 10000, AnnualRate: 5, Frequency: domain.FrequencyMonthly, TermMonths: 18}},
		{"years and months", func(f *Form) { f.Years = "2"; f.Months = "3" }, domain.Input{Principal: 10000, AnnualRate: 5, Frequency: domain.FrequencyMonthly, TermMonths: 27}},
		{"zero years with months", func(f *Form) { f.Years = "0"; f.Months = "6" }, domain.Input{Principal: 10000, AnnualRate: 5, Frequency: domain.FrequencyMonthly, TermMonths: 6}},
		{"frequency trimmed", func(f *Form) { f.PayFrequency = " weekly " }, domain.Input{Principal: 10000, AnnualRate: 5, Frequency: domain.FrequencyWeekly, TermMonths: 12}},
		{"unknown frequency kept", func(f *Form) { f.PayFrequency = "daily" }, domain.Input{Principal: 10000, AnnualRate: 5, Frequency: domain.Frequency("daily"), TermMonths: 12}},
		{"decimal amounts", func(f *Form) { f.LoanAmount = "1234.56"; f.InterestRate = "3.75" }, domain.Input{Principal: 1234.56, AnnualRate: 3.75, Frequency: domain.FrequencyMonthly, TermMonths: 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			got, err := ParseForm(f)
			if err != nil {
				t.Fatalf("ParseForm err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseForm_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
		kind   error
		field  string
		msg    string
	}{
		{"missing amount", func(f *Form) { f.LoanAmount = "" }, validation.ErrMissingField, "loanAmount", msgAmountRequired},
		{"blank amount", func(f *Form) { f.LoanAmount = "  " }, validation.ErrMissingField, "loanAmount", msgAmountRequired},
		{"no term", func(f *Form) { f.Years = ""; f.Months = "" }, validation.ErrBothZero, "", msgTermRequired},
		{"zero term", func(f *Form) { f.Years = "0"; f.Months = "0" }, validation.ErrBothZero, "", msgTermRequired},
		{"missing rate", func(f *Form) { f.InterestRate = "" }, validation.ErrMissingField, "interestRate", msgRateRequired},
		{"zero rate", func(f *Form) { f.InterestRate = "0" }, validation.ErrArithmeticDomain, "interestRate", msgRateRequired},
		{"negative rate", func(f *Form) { f.InterestRate = "-1" }, validation.ErrInvalidNumber, "interestRate", msgRateRequired},
		{"missing frequency", func(f *Form) { f.PayFrequency = "" }, validation.ErrMissingField, "payFrequency", msgFreqRequired},
		{"text amount", func(f *Form) { f.LoanAmount = "ten" }, validation.ErrInvalidNumber, "loanAmount", msgAmountInvalid},
		{"zero amount", func(f *Form) { f.LoanAmount = "0" }, validation.ErrInvalidNumber, "loanAmount", msgAmountInvalid},
		{"nan amount", func(f *Form) { f.LoanAmount = "NaN" }, validation.ErrInvalidNumber, "loanAmount", msgAmountInvalid},
		{"fractional years", func(f *Form) { f.Years = "1.5" }, validation.ErrInvalidNumber, "years", msgYearsInvalid},
		{"negative months", func(f *Form) { f.Months = "-2" }, validation.ErrInvalidNumber, "months", msgMonthsInvalid},
		{"term too long", func(f *Form) { f.Years = "100"; f.Months = "1" }, validation.ErrInvalidNumber, "years", msgTermTooLong},
		{"huge years", func(f *Form) { f.Years = "9223372036854775807" }, validation.ErrInvalidNumber, "years", msgTermTooLong},
		{"rate vanishes per period", func(f *Form) { f.InterestRate = "0.00000000000000001" }, validation.ErrArithmeticDomain, "interestRate", msgRateTooSmall},
		{"rate vanishes weekly", func(f *Form) { f.InterestRate = "0.0000000000001"; f.PayFrequency = "weekly" }, validation.ErrArithmeticDomain, "interestRate", msgRateTooSmall},
		{"repayment overflows", func(f *Form) { f.LoanAmount = "1e300"; f.InterestRate = "1e300" }, validation.ErrArithmeticDomain, "", msgOutOfRange},
		{"amount beyond float range", func(f *Form) { f.LoanAmount = "1e400" }, validation.ErrInvalidNumber, "loanAmount", msgAmountInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			_, err := ParseForm(f)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("err = %v, want kind %v", err, tc.kind)
			}
			ve, ok := validation.As(err)
			if !ok {
				t.Fatalf("not a validation error: %T", err)
			}
			if ve.Field != tc.field || ve.Message != tc.msg {
				t.Fatalf("got field=%q msg=%q, want %q %q", ve.Field, ve.Message, tc.field, tc.msg)
			}
		})
	}
}

func TestParseForm_ExtremeRatesStayFinite(t *testing.T) {
	cases := []struct {
		name  string
		rate  string
		freq  string
		years string
	}{
		{"steep monthly", "1000000", "monthly", "1"},
		{"steep weekly", "1000000", "weekly", "1"},
		{"small but usable", "0.0001", "monthly", "1"},
		{"maximum term", "99.99", "bi-weekly", "100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			f.InterestRate = tc.rate
			f.PayFrequency = tc.freq
			f.Years = tc.years
			in, err := ParseForm(f)
			if err != nil {
				t.Fatalf("ParseForm err: %v", err)
			}
			res := domain.Calculate(in)
			for _, v := range []float64{res.TotalCost, res.PeriodPayment, res.InterestPaid} {
				if math.IsInf(v, 0) || math.IsNaN(v) {
					t.Fatalf("non-finite result %+v", res)
				}
			}
			if res.TotalCost < in.Principal {
				t.Fatalf("total %v below principal %v", res.TotalCost, in.Principal)
			}
		})
	}
}
