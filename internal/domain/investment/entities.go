package investment

// Input is a validated projection request. Deposits may not both be zero.
type Input struct {
	InitialDeposit float64
	MonthlyDeposit float64
	AnnualRate     float64 // percent, non-zero
	Years          int
}

// Result amounts are rounded to cents. YearlySeries is unrounded and holds
// the projected value at the end of each year 1..Years.
type Result struct {
	Total         float64
	TotalDeposits float64
	Profit        float64
	Years         int
	YearlySeries  []float64
}
