package breakeven

import (
	"github.com/shopspring/decimal"
)

// SolverOptions configures the bisection search.
type SolverOptions struct {
	// Tolerance is the interval width, in currency, below which the search
	// stops.
	Tolerance decimal.Decimal
	// MaxIterations caps the number of pipeline evaluations, bounding
	// worst-case latency.
	MaxIterations int
}

// DefaultSolverOptions returns the standard currency-precision options.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 200,
	}
}

// Result contains the solved break-even point.
type Result struct {
	GrossIncome decimal.Decimal `json:"gross_income"`
	NetIncome   decimal.Decimal `json:"net_income"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
	WeeklyHours decimal.Decimal `json:"weekly_hours"`
	Iterations  int             `json:"iterations"`
	Converged   bool            `json:"converged"`
}

// BreakEvenError represents errors from the break-even solver.
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
