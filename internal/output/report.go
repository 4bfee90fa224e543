package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/canwage/canwage/internal/breakeven"
	"github.com/canwage/canwage/internal/calculation"
	"github.com/shopspring/decimal"
)

// ReportGenerator renders deduction breakdowns and solver results in
// console, json, or csv format.
type ReportGenerator struct {
	Writer io.Writer
}

// NewReportGenerator creates a report generator writing to w
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{Writer: w}
}

// WriteDeductionReport writes a deduction breakdown in the given format
func (rg *ReportGenerator) WriteDeductionReport(b *calculation.DeductionBreakdown, format string) error {
	switch format {
	case "console":
		return rg.writeDeductionConsole(b)
	case "json":
		return rg.writeJSON(b)
	case "csv":
		return rg.writeDeductionCSV(b)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteBreakEvenReport writes a solver result in the given format
func (rg *ReportGenerator) WriteBreakEvenReport(r *breakeven.Result, format string) error {
	switch format {
	case "console":
		return rg.writeBreakEvenConsole(r)
	case "json":
		return rg.writeJSON(r)
	case "csv":
		return rg.writeBreakEvenCSV(r)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) writeDeductionConsole(b *calculation.DeductionBreakdown) error {
	w := rg.Writer
	fmt.Fprintln(w, "PAYROLL DEDUCTION BREAKDOWN")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Gross Income:           %s\n", FormatCurrency(b.GrossIncome))
	fmt.Fprintf(w, "Self-Employed:          %t\n", b.SelfEmployed)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Pension Tier 1:         %s\n", FormatCurrency(b.Tier1Pension))
	fmt.Fprintf(w, "Pension Tier 2:         %s\n", FormatCurrency(b.Tier2Pension))
	fmt.Fprintf(w, "Total Pension:          %s\n", FormatCurrency(b.TotalPension))
	fmt.Fprintf(w, "Insurance Premium:      %s\n", FormatCurrency(b.InsurancePremium))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tax Deduction:          %s\n", FormatCurrency(b.TaxDeduction))
	fmt.Fprintf(w, "Taxable Income:         %s\n", FormatCurrency(b.TaxableIncome))
	fmt.Fprintf(w, "Federal Tax:            %s\n", FormatCurrency(b.FederalTax))
	fmt.Fprintf(w, "Provincial Tax:         %s\n", FormatCurrency(b.ProvincialTax))
	fmt.Fprintf(w, "Non-Refundable Credits: %s\n", FormatCurrency(b.Credits))
	fmt.Fprintf(w, "Income Tax Owed:        %s\n", FormatCurrency(b.IncomeTax))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Payroll Deduction: %s\n", FormatCurrency(b.TotalDeduction))
	fmt.Fprintf(w, "Net Income:              %s\n", FormatCurrency(b.NetIncome))
	return nil
}

func (rg *ReportGenerator) writeBreakEvenConsole(r *breakeven.Result) error {
	w := rg.Writer
	fmt.Fprintln(w, "BREAK-EVEN WAGE ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Gross Annual Income: %s\n", FormatCurrency(r.GrossIncome))
	fmt.Fprintf(w, "Net Annual Income:   %s\n", FormatCurrency(r.NetIncome))
	fmt.Fprintf(w, "Weekly Hours:        %s\n", r.WeeklyHours.StringFixed(1))
	fmt.Fprintf(w, "Hourly Wage:         %s\n", FormatCurrency(r.HourlyWage))
	fmt.Fprintf(w, "Iterations:          %d\n", r.Iterations)
	if !r.Converged {
		fmt.Fprintln(w, "Warning: solver hit the iteration cap before converging")
	}
	return nil
}

func (rg *ReportGenerator) writeJSON(v any) error {
	enc := json.NewEncoder(rg.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (rg *ReportGenerator) writeDeductionCSV(b *calculation.DeductionBreakdown) error {
	cw := csv.NewWriter(rg.Writer)
	rows := [][]string{
		{"field", "value"},
		{"gross_income", b.GrossIncome.StringFixed(2)},
		{"self_employed", fmt.Sprintf("%t", b.SelfEmployed)},
		{"tier1_pension", b.Tier1Pension.StringFixed(2)},
		{"tier2_pension", b.Tier2Pension.StringFixed(2)},
		{"total_pension", b.TotalPension.StringFixed(2)},
		{"insurance_premium", b.InsurancePremium.StringFixed(2)},
		{"tax_deduction", b.TaxDeduction.StringFixed(2)},
		{"taxable_income", b.TaxableIncome.StringFixed(2)},
		{"federal_tax", b.FederalTax.StringFixed(2)},
		{"provincial_tax", b.ProvincialTax.StringFixed(2)},
		{"credits", b.Credits.StringFixed(2)},
		{"income_tax", b.IncomeTax.StringFixed(2)},
		{"total_deduction", b.TotalDeduction.StringFixed(2)},
		{"net_income", b.NetIncome.StringFixed(2)},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (rg *ReportGenerator) writeBreakEvenCSV(r *breakeven.Result) error {
	cw := csv.NewWriter(rg.Writer)
	rows := [][]string{
		{"field", "value"},
		{"gross_income", r.GrossIncome.StringFixed(2)},
		{"net_income", r.NetIncome.StringFixed(2)},
		{"hourly_wage", r.HourlyWage.StringFixed(2)},
		{"weekly_hours", r.WeeklyHours.StringFixed(1)},
		{"iterations", fmt.Sprintf("%d", r.Iterations)},
		{"converged", fmt.Sprintf("%t", r.Converged)},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// FormatCurrency formats a decimal as a dollar amount with thousands
// separators, e.g. $1,234.56.
func FormatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var grouped []string
	for len(whole) > 3 {
		grouped = append([]string{whole[len(whole)-3:]}, grouped...)
		whole = whole[:len(whole)-3]
	}
	grouped = append([]string{whole}, grouped...)

	out := "$" + strings.Join(grouped, ",") + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
