package loan

type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyWeekly   Frequency = "weekly"
)

// Input is a validated loan request. TermMonths is years*12 + months.
type Input struct {
	Principal  float64
	AnnualRate float64 // percent
	Frequency  Frequency
	TermMonths int
}

type Result struct {
	TotalCost     float64   `json:"total_loan_cost"`
	PeriodPayment float64   `json:"period_payment"`
	InterestPaid  float64   `json:"interest_paid"`
	Frequency     Frequency `json:"period_type"`
}
