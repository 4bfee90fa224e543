package calculation

import (
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger is a minimal leveled logging interface so callers can plug in
// their own logger for debug tracing.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Engine composes the bracket, contribution, deduction and credit
// calculators for one tax year. It holds no mutable state besides the
// injected parameter set, so concurrent use is safe.
type Engine struct {
	taxYear domain.TaxYear
	logger  Logger
	Debug   bool
}

// NewEngine creates an engine for the given tax year parameter set.
func NewEngine(taxYear domain.TaxYear) *Engine {
	return &Engine{taxYear: taxYear, logger: noopLogger{}}
}

// SetLogger installs a logger used when Debug is enabled.
func (e *Engine) SetLogger(l Logger) {
	if l != nil {
		e.logger = l
	}
}

// TaxYear returns the parameter set the engine was built with.
func (e *Engine) TaxYear() domain.TaxYear {
	return e.taxYear
}

// TotalPensionContribution returns both pension tiers summed.
func (e *Engine) TotalPensionContribution(income decimal.Decimal, selfEmployed bool) (decimal.Decimal, error) {
	return TotalPensionContribution(income, selfEmployed, e.taxYear.Pension)
}

// InsurancePremium returns the employment-insurance premium.
func (e *Engine) InsurancePremium(income decimal.Decimal, selfEmployed bool) (decimal.Decimal, error) {
	return InsurancePremium(income, selfEmployed, e.taxYear.Insurance)
}

// TaxableIncome returns gross income less the total tax deduction, floored
// at zero.
func (e *Engine) TaxableIncome(income decimal.Decimal, selfEmployed bool) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, negativeInput("taxable_income", "income", income)
	}
	tier1, err := Tier1Contribution(income, selfEmployed, e.taxYear.Pension)
	if err != nil {
		return decimal.Zero, err
	}
	tier2, err := Tier2Contribution(income, selfEmployed, e.taxYear.Pension)
	if err != nil {
		return decimal.Zero, err
	}
	deduction := TotalTaxDeduction(tier1, tier2, selfEmployed, e.taxYear.Pension)
	taxable := income.Sub(deduction)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	return taxable, nil
}

// GrossTaxOwed returns federal plus provincial bracket tax on taxable
// income, before credits.
func (e *Engine) GrossTaxOwed(income decimal.Decimal, selfEmployed bool) (decimal.Decimal, error) {
	taxable, err := e.TaxableIncome(income, selfEmployed)
	if err != nil {
		return decimal.Zero, err
	}
	federal, err := BracketTax(taxable, e.taxYear.Federal)
	if err != nil {
		return decimal.Zero, err
	}
	provincial, err := BracketTax(taxable, e.taxYear.Provincial)
	if err != nil {
		return decimal.Zero, err
	}
	return federal.Add(provincial), nil
}

// IncomeTaxOwed returns gross tax less total credits, floored at zero. No
// refundable credits are modeled.
func (e *Engine) IncomeTaxOwed(income decimal.Decimal, selfEmployed bool) (decimal.Decimal, error) {
	breakdown, err := e.DeductionBreakdown(income, selfEmployed)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.IncomeTax, nil
}

// TotalPayrollDeduction returns income tax plus total pension contribution
// plus insurance premium.
func (e *Engine) TotalPayrollDeduction(income decimal.Decimal, selfEmployed bool) (decimal.Decimal, error) {
	breakdown, err := e.DeductionBreakdown(income, selfEmployed)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.TotalDeduction, nil
}

// DeductionBreakdown itemizes the full deduction pipeline for one income.
type DeductionBreakdown struct {
	GrossIncome      decimal.Decimal `json:"gross_income"`
	SelfEmployed     bool            `json:"self_employed"`
	Tier1Pension     decimal.Decimal `json:"tier1_pension"`
	Tier2Pension     decimal.Decimal `json:"tier2_pension"`
	TotalPension     decimal.Decimal `json:"total_pension"`
	InsurancePremium decimal.Decimal `json:"insurance_premium"`
	TaxDeduction     decimal.Decimal `json:"tax_deduction"`
	TaxableIncome    decimal.Decimal `json:"taxable_income"`
	FederalTax       decimal.Decimal `json:"federal_tax"`
	ProvincialTax    decimal.Decimal `json:"provincial_tax"`
	GrossTax         decimal.Decimal `json:"gross_tax"`
	Credits          decimal.Decimal `json:"credits"`
	IncomeTax        decimal.Decimal `json:"income_tax"`
	TotalDeduction   decimal.Decimal `json:"total_deduction"`
	NetIncome        decimal.Decimal `json:"net_income"`
}

// DeductionBreakdown runs the whole pipeline once and returns every
// intermediate figure.
func (e *Engine) DeductionBreakdown(income decimal.Decimal, selfEmployed bool) (*DeductionBreakdown, error) {
	if income.IsNegative() {
		return nil, negativeInput("deduction_breakdown", "income", income)
	}

	p := e.taxYear.Pension
	tier1, err := Tier1Contribution(income, selfEmployed, p)
	if err != nil {
		return nil, err
	}
	tier2, err := Tier2Contribution(income, selfEmployed, p)
	if err != nil {
		return nil, err
	}
	premium, err := InsurancePremium(income, selfEmployed, e.taxYear.Insurance)
	if err != nil {
		return nil, err
	}

	totalPension := tier1.Add(tier2)
	deduction := TotalTaxDeduction(tier1, tier2, selfEmployed, p)
	enhanced := EnhancedDeduction(tier1, tier2, p)

	taxable := income.Sub(deduction)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	federal, err := BracketTax(taxable, e.taxYear.Federal)
	if err != nil {
		return nil, err
	}
	provincial, err := BracketTax(taxable, e.taxYear.Provincial)
	if err != nil {
		return nil, err
	}
	grossTax := federal.Add(provincial)

	credits := TotalCredits(income, taxable, totalPension, enhanced, premium, selfEmployed, e.taxYear)
	incomeTax := grossTax.Sub(credits)
	if incomeTax.IsNegative() {
		incomeTax = decimal.Zero
	}

	totalDeduction := incomeTax.Add(totalPension).Add(premium)

	if e.Debug {
		e.logger.Debugf("income=%s taxable=%s grossTax=%s credits=%s incomeTax=%s totalDeduction=%s",
			income, taxable, grossTax, credits, incomeTax, totalDeduction)
	}

	return &DeductionBreakdown{
		GrossIncome:      income,
		SelfEmployed:     selfEmployed,
		Tier1Pension:     tier1,
		Tier2Pension:     tier2,
		TotalPension:     totalPension,
		InsurancePremium: premium,
		TaxDeduction:     deduction,
		TaxableIncome:    taxable,
		FederalTax:       federal,
		ProvincialTax:    provincial,
		GrossTax:         grossTax,
		Credits:          credits,
		IncomeTax:        incomeTax,
		TotalDeduction:   totalDeduction,
		NetIncome:        income.Sub(totalDeduction),
	}, nil
}
