package breakeven

import (
	"testing"

	"github.com/canwage/canwage/internal/calculation"
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestSolver() *Solver {
	engine := calculation.NewEngine(domain.DefaultTaxYear2024())
	return NewDefaultSolver(engine)
}

func TestBreakEvenWageRoundTrip(t *testing.T) {
	solver := newTestSolver()
	weeklyHours := decimal.NewFromInt(40)
	tolerance := decimal.NewFromFloat(0.01)

	tests := []struct {
		name         string
		baseExpense  decimal.Decimal
		selfEmployed bool
	}{
		{name: "Employee netting 40k", baseExpense: decimal.NewFromInt(40000)},
		{name: "Self-employed netting 40k", baseExpense: decimal.NewFromInt(40000), selfEmployed: true},
		{name: "Employee netting 25k", baseExpense: decimal.NewFromInt(25000)},
		{name: "Employee netting 90k", baseExpense: decimal.NewFromInt(90000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := solver.BreakEvenWage(tt.baseExpense, weeklyHours, tt.selfEmployed)
			assert.NoError(t, err)
			assert.True(t, result.Converged)
			assert.LessOrEqual(t, result.Iterations, solver.Options.MaxIterations)

			// Reconstruct gross from the wage and push it back through the
			// deduction pipeline; the net must land on the target.
			gross := result.HourlyWage.Mul(decimal.NewFromInt(52)).Mul(weeklyHours)
			deduction, err := solver.Engine.TotalPayrollDeduction(gross, tt.selfEmployed)
			assert.NoError(t, err)
			net := gross.Sub(deduction)

			diff := net.Sub(tt.baseExpense).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"net %s misses target %s by %s", net, tt.baseExpense, diff)
		})
	}
}

func TestBreakEvenWageGrossAtLeastExpense(t *testing.T) {
	solver := newTestSolver()

	result, err := solver.BreakEvenWage(decimal.NewFromInt(40000), decimal.NewFromInt(40), false)
	assert.NoError(t, err)
	assert.True(t, result.GrossIncome.GreaterThanOrEqual(decimal.NewFromInt(40000)),
		"gross %s cannot be below the target net", result.GrossIncome)
	assert.True(t, result.NetIncome.LessThanOrEqual(result.GrossIncome))
}

func TestBreakEvenWageSelfEmployedNeedsHigherGross(t *testing.T) {
	solver := newTestSolver()
	expense := decimal.NewFromInt(40000)
	hours := decimal.NewFromInt(40)

	employee, err := solver.BreakEvenWage(expense, hours, false)
	assert.NoError(t, err)
	selfEmployed, err := solver.BreakEvenWage(expense, hours, true)
	assert.NoError(t, err)

	// Doubled pension outweighs the dropped insurance premium and
	// employment credit at this income level.
	assert.True(t, selfEmployed.GrossIncome.GreaterThan(employee.GrossIncome),
		"self-employed gross %s should exceed employee gross %s",
		selfEmployed.GrossIncome, employee.GrossIncome)
}

func TestBreakEvenWageZeroExpense(t *testing.T) {
	solver := newTestSolver()

	result, err := solver.BreakEvenWage(decimal.Zero, decimal.NewFromInt(40), false)
	assert.NoError(t, err)
	assert.True(t, result.GrossIncome.IsZero())
	assert.True(t, result.HourlyWage.IsZero())
	assert.True(t, result.Converged)
}

func TestBreakEvenWageInvalidInput(t *testing.T) {
	solver := newTestSolver()
	hours := decimal.NewFromInt(40)

	var invalid *calculation.InvalidInputError

	_, err := solver.BreakEvenWage(decimal.NewFromInt(-1), hours, false)
	assert.ErrorAs(t, err, &invalid)

	_, err = solver.BreakEvenWage(decimal.NewFromInt(40000), decimal.Zero, false)
	assert.ErrorAs(t, err, &invalid)

	_, err = solver.BreakEvenWage(decimal.NewFromInt(40000), decimal.NewFromInt(-10), false)
	assert.ErrorAs(t, err, &invalid)
}

func TestBreakEvenWageHourConversion(t *testing.T) {
	solver := newTestSolver()
	expense := decimal.NewFromInt(40000)

	fullTime, err := solver.BreakEvenWage(expense, decimal.NewFromInt(40), false)
	assert.NoError(t, err)
	halfTime, err := solver.BreakEvenWage(expense, decimal.NewFromInt(20), false)
	assert.NoError(t, err)

	// Same gross income, half the hours, double the wage.
	assert.True(t, fullTime.GrossIncome.Equal(halfTime.GrossIncome))
	diff := halfTime.HourlyWage.Sub(fullTime.HourlyWage.Mul(decimal.NewFromInt(2))).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.0001)),
		"half-time wage %s is not double full-time wage %s", halfTime.HourlyWage, fullTime.HourlyWage)
}
