package loan

// Form is the raw loan form as submitted; every value is still a string.
type Form struct {
	LoanAmount   string `json:"loanAmount"`
	Years        string `json:"years"`
	Months       string `json:"months"`
	InterestRate string `json:"interestRate"`
	PayFrequency string `json:"payFrequency"`
}

type LoanDTO struct {
	TotalLoanCost float64 `json:"total_loan_cost"`
	PeriodPayment float64 `json:"period_payment"`
	InterestPaid  float64 `json:"interest_paid"`
	PeriodType    string  `json:"period_type"`
	Chart         string  `json:"chart"`
	ChartSrc      string  `json:"chart_src"`
}
