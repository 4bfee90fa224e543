package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/canwage/canwage/internal/breakeven"
	"github.com/canwage/canwage/internal/calculation"
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "Zero", amount: decimal.Zero, expected: "$0.00"},
		{name: "Small", amount: decimal.NewFromFloat(5.5), expected: "$5.50"},
		{name: "Thousands", amount: decimal.NewFromFloat(1234.56), expected: "$1,234.56"},
		{name: "Millions", amount: decimal.NewFromInt(1234567), expected: "$1,234,567.00"},
		{name: "Negative", amount: decimal.NewFromFloat(-987.6), expected: "-$987.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func testBreakdown(t *testing.T) *calculation.DeductionBreakdown {
	t.Helper()
	engine := calculation.NewEngine(domain.DefaultTaxYear2024())
	breakdown, err := engine.DeductionBreakdown(decimal.NewFromInt(80000), false)
	require.NoError(t, err)
	return breakdown
}

func TestWriteDeductionReportFormats(t *testing.T) {
	breakdown := testBreakdown(t)

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteDeductionReport(breakdown, "console"))
		assert.Contains(t, buf.String(), "PAYROLL DEDUCTION BREAKDOWN")
		assert.Contains(t, buf.String(), FormatCurrency(breakdown.TotalDeduction))
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteDeductionReport(breakdown, "json"))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Contains(t, decoded, "gross_income")
		assert.Contains(t, decoded, "total_deduction")
	})

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteDeductionReport(breakdown, "csv"))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, "field,value", lines[0])
		assert.Greater(t, len(lines), 10)
	})

	t.Run("Unsupported", func(t *testing.T) {
		rg := NewReportGenerator(&bytes.Buffer{})
		assert.Error(t, rg.WriteDeductionReport(breakdown, "html"))
	})
}

func TestWriteBreakEvenReportFormats(t *testing.T) {
	result := &breakeven.Result{
		GrossIncome: decimal.NewFromFloat(49832.10),
		NetIncome:   decimal.NewFromInt(40000),
		HourlyWage:  decimal.NewFromFloat(23.96),
		WeeklyHours: decimal.NewFromInt(40),
		Iterations:  31,
		Converged:   true,
	}

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteBreakEvenReport(result, "console"))
		assert.Contains(t, buf.String(), "BREAK-EVEN WAGE ANALYSIS")
		assert.NotContains(t, buf.String(), "iteration cap")
	})

	t.Run("Console not converged", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		capped := *result
		capped.Converged = false
		require.NoError(t, rg.WriteBreakEvenReport(&capped, "console"))
		assert.Contains(t, buf.String(), "iteration cap")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteBreakEvenReport(result, "json"))

		var decoded breakeven.Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.True(t, decoded.GrossIncome.Equal(result.GrossIncome))
		assert.Equal(t, 31, decoded.Iterations)
	})

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		rg := NewReportGenerator(&buf)
		require.NoError(t, rg.WriteBreakEvenReport(result, "csv"))
		assert.Contains(t, buf.String(), "hourly_wage,23.96")
	})
}
