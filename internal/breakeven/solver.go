package breakeven

import (
	"github.com/canwage/canwage/internal/calculation"
	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	two          = decimal.NewFromInt(2)
	weeksPerYear = decimal.NewFromInt(52)
)

// Solver finds the gross income whose net, after the full payroll deduction
// pipeline, equals a target expense.
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a break-even solver over the given engine.
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// BreakEvenWage solves gross - TotalPayrollDeduction(gross) = baseExpense by
// bisection and converts the result to an hourly wage at the given weekly
// hours.
//
// The lower bound is baseExpense itself (deductions are never negative, so
// net <= gross always). The upper bound divides by one minus the configured
// maximum payroll deduction rate; it is valid only while the deduction
// fraction stays below that cap, which the tax year configuration asserts.
func (s *Solver) BreakEvenWage(baseExpense, weeklyHours decimal.Decimal, selfEmployed bool) (*Result, error) {
	if baseExpense.IsNegative() {
		return nil, &calculation.InvalidInputError{Op: "break_even_wage", Field: "baseExpense", Value: baseExpense}
	}
	if weeklyHours.LessThanOrEqual(decimal.Zero) {
		return nil, &calculation.InvalidInputError{Op: "break_even_wage", Field: "weeklyHours", Value: weeklyHours}
	}

	maxRate := s.Engine.TaxYear().MaxPayrollDeductionRate
	lower := baseExpense
	upper := baseExpense.Div(one.Sub(maxRate))
	gross := lower.Add(upper).Div(two)

	converged := false
	iterations := 0
	for iterations < s.Options.MaxIterations {
		iterations++
		gross = lower.Add(upper).Div(two)

		deduction, err := s.Engine.TotalPayrollDeduction(gross, selfEmployed)
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "break_even_wage",
				Message:   "payroll deduction evaluation failed",
				Cause:     err,
			}
		}
		net := gross.Sub(deduction)

		if net.Equal(baseExpense) {
			converged = true
			break
		}
		if net.GreaterThan(baseExpense) {
			upper = gross
		} else {
			lower = gross
		}

		if upper.Sub(lower).LessThanOrEqual(s.Options.Tolerance) {
			converged = true
			gross = lower.Add(upper).Div(two)
			break
		}
	}

	deduction, err := s.Engine.TotalPayrollDeduction(gross, selfEmployed)
	if err != nil {
		return nil, &BreakEvenError{
			Operation: "break_even_wage",
			Message:   "payroll deduction evaluation failed",
			Cause:     err,
		}
	}

	return &Result{
		GrossIncome: gross,
		NetIncome:   gross.Sub(deduction),
		HourlyWage:  gross.Div(weeksPerYear.Mul(weeklyHours)),
		WeeklyHours: weeklyHours,
		Iterations:  iterations,
		Converged:   converged,
	}, nil
}
