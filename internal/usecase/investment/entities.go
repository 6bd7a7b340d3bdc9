package investment

// Form is the raw investment form as submitted.
type Form struct {
	InitialDeposit string `json:"initialDeposit"`
	MonthlyDeposit string `json:"monthlyDeposit"`
	InterestRate   string `json:"interestRate"`
	Years          string `json:"years"`
}

// InvestDTO carries display-formatted amounts ("1,050.00") next to the raw
// yearly values used for the chart.
type InvestDTO struct {
	Total           string    `json:"total"`
	Years           int       `json:"years"`
	TotalDeposits   string    `json:"total_deposits"`
	Profit          string    `json:"profit"`
	ReturnsEachYear []float64 `json:"returns_each_year"`
	Chart           string    `json:"chart"`
	ChartSrc        string    `json:"chart_src"`
}
