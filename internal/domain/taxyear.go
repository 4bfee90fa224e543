package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one tier of a progressive bracket table. The final tier of a
// table carries Unbounded=true and its UpperBound is ignored.
type TaxBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded  bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// BracketTable is an ordered sequence of brackets, ascending by upper bound.
type BracketTable []TaxBracket

// LowestRate returns the marginal rate of the first tier. Credit amounts are
// expressed in dollars of tax reduction by multiplying against this rate.
func (bt BracketTable) LowestRate() decimal.Decimal {
	if len(bt) == 0 {
		return decimal.Zero
	}
	return bt[0].Rate
}

// UpperBoundOf returns the upper bound of tier i (zero-based).
func (bt BracketTable) UpperBoundOf(i int) decimal.Decimal {
	if i < 0 || i >= len(bt) {
		return decimal.Zero
	}
	return bt[i].UpperBound
}

// PensionParams holds the two-tier pension contribution scheme (CPP/CPP2).
// Tier 1 applies between the basic exemption and the first ceiling at
// BaseRate; tier 2 applies between the two ceilings at Tier2Rate. AddedRate
// is the enhanced portion of BaseRate, which is tax-deductible rather than
// creditable.
type PensionParams struct {
	BasicExemption decimal.Decimal `yaml:"basic_exemption" json:"basic_exemption"`
	Tier1Ceiling   decimal.Decimal `yaml:"tier1_ceiling" json:"tier1_ceiling"`
	Tier2Ceiling   decimal.Decimal `yaml:"tier2_ceiling" json:"tier2_ceiling"`
	BaseRate       decimal.Decimal `yaml:"base_rate" json:"base_rate"`
	AddedRate      decimal.Decimal `yaml:"added_rate" json:"added_rate"`
	Tier2Rate      decimal.Decimal `yaml:"tier2_rate" json:"tier2_rate"`
}

// InsuranceParams holds the employment-insurance premium scheme (EI). There
// is no exemption floor; the self-employed are exempt from the scheme
// entirely.
type InsuranceParams struct {
	InsurableCeiling decimal.Decimal `yaml:"insurable_ceiling" json:"insurable_ceiling"`
	PremiumRate      decimal.Decimal `yaml:"premium_rate" json:"premium_rate"`
}

// BasicPersonalParams holds the basic personal amounts. The federal amount
// phases down linearly from FederalMax to FederalMin between the 3rd and
// 4th federal bracket upper bounds; the provincial amount is flat.
type BasicPersonalParams struct {
	FederalMax       decimal.Decimal `yaml:"federal_max" json:"federal_max"`
	FederalMin       decimal.Decimal `yaml:"federal_min" json:"federal_min"`
	ProvincialAmount decimal.Decimal `yaml:"provincial_amount" json:"provincial_amount"`
}

// TaxYear is the complete, immutable parameter set for one jurisdiction and
// tax year. Every calculator takes a TaxYear explicitly; swapping years or
// jurisdictions never touches the algorithms.
type TaxYear struct {
	Year       int          `yaml:"year" json:"year"`
	Federal    BracketTable `yaml:"federal_brackets" json:"federal_brackets"`
	Provincial BracketTable `yaml:"provincial_brackets" json:"provincial_brackets"`

	Pension   PensionParams   `yaml:"pension" json:"pension"`
	Insurance InsuranceParams `yaml:"insurance" json:"insurance"`

	BasicPersonal       BasicPersonalParams `yaml:"basic_personal" json:"basic_personal"`
	EmploymentAmountCap decimal.Decimal     `yaml:"employment_amount_cap" json:"employment_amount_cap"`

	// MaxPayrollDeductionRate is an asymptotic cap on the payroll deduction
	// fraction, used only to bound the break-even solver's search interval.
	MaxPayrollDeductionRate decimal.Decimal `yaml:"max_payroll_deduction_rate" json:"max_payroll_deduction_rate"`
}

// DefaultTaxYear2024 returns the 2024 federal and Ontario parameter set.
func DefaultTaxYear2024() TaxYear {
	return TaxYear{
		Year: 2024,
		Federal: BracketTable{
			{UpperBound: decimal.NewFromInt(55867), Rate: decimal.NewFromFloat(0.15)},
			{UpperBound: decimal.NewFromInt(111733), Rate: decimal.NewFromFloat(0.205)},
			{UpperBound: decimal.NewFromInt(173205), Rate: decimal.NewFromFloat(0.26)},
			{UpperBound: decimal.NewFromInt(246752), Rate: decimal.NewFromFloat(0.29)},
			{Rate: decimal.NewFromFloat(0.33), Unbounded: true},
		},
		Provincial: BracketTable{
			{UpperBound: decimal.NewFromInt(51446), Rate: decimal.NewFromFloat(0.0505)},
			{UpperBound: decimal.NewFromInt(102894), Rate: decimal.NewFromFloat(0.0915)},
			{UpperBound: decimal.NewFromInt(150000), Rate: decimal.NewFromFloat(0.1116)},
			{UpperBound: decimal.NewFromInt(220000), Rate: decimal.NewFromFloat(0.1216)},
			{Rate: decimal.NewFromFloat(0.1316), Unbounded: true},
		},
		Pension: PensionParams{
			BasicExemption: decimal.NewFromInt(3500),
			Tier1Ceiling:   decimal.NewFromInt(68500),
			Tier2Ceiling:   decimal.NewFromInt(73200),
			BaseRate:       decimal.NewFromFloat(0.0595),
			AddedRate:      decimal.NewFromFloat(0.01),
			Tier2Rate:      decimal.NewFromFloat(0.04),
		},
		Insurance: InsuranceParams{
			InsurableCeiling: decimal.NewFromInt(63200),
			PremiumRate:      decimal.NewFromFloat(0.0166),
		},
		BasicPersonal: BasicPersonalParams{
			FederalMax:       decimal.NewFromInt(15705),
			FederalMin:       decimal.NewFromInt(14156),
			ProvincialAmount: decimal.NewFromInt(12399),
		},
		EmploymentAmountCap:     decimal.NewFromInt(1433),
		MaxPayrollDeductionRate: decimal.NewFromFloat(0.5),
	}
}
