package calculation

import (
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Tier1Contribution computes the base pension contribution: the pensionable
// band between the basic exemption and the tier-1 ceiling at the base rate.
// The self-employed pay both the employee and employer halves.
func Tier1Contribution(income decimal.Decimal, selfEmployed bool, p domain.PensionParams) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, negativeInput("tier1_contribution", "income", income)
	}
	if income.LessThanOrEqual(p.BasicExemption) {
		return decimal.Zero, nil
	}

	pensionable := decimal.Min(income.Sub(p.BasicExemption), p.Tier1Ceiling.Sub(p.BasicExemption))
	contribution := pensionable.Mul(p.BaseRate)
	if selfEmployed {
		contribution = contribution.Mul(two)
	}
	return contribution, nil
}

// Tier2Contribution computes the second pension contribution band, between
// the tier-1 and tier-2 ceilings at the tier-2 rate. Doubled when
// self-employed, like tier 1.
func Tier2Contribution(income decimal.Decimal, selfEmployed bool, p domain.PensionParams) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, negativeInput("tier2_contribution", "income", income)
	}
	if income.LessThanOrEqual(p.Tier1Ceiling) {
		return decimal.Zero, nil
	}

	pensionable := decimal.Min(income.Sub(p.Tier1Ceiling), p.Tier2Ceiling.Sub(p.Tier1Ceiling))
	contribution := pensionable.Mul(p.Tier2Rate)
	if selfEmployed {
		contribution = contribution.Mul(two)
	}
	return contribution, nil
}

// TotalPensionContribution sums the two pension contribution tiers.
func TotalPensionContribution(income decimal.Decimal, selfEmployed bool, p domain.PensionParams) (decimal.Decimal, error) {
	tier1, err := Tier1Contribution(income, selfEmployed, p)
	if err != nil {
		return decimal.Zero, err
	}
	tier2, err := Tier2Contribution(income, selfEmployed, p)
	if err != nil {
		return decimal.Zero, err
	}
	return tier1.Add(tier2), nil
}

// InsurancePremium computes the employment-insurance premium on income up to
// the insurable ceiling. The self-employed are exempt from the scheme.
func InsurancePremium(income decimal.Decimal, selfEmployed bool, p domain.InsuranceParams) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, negativeInput("insurance_premium", "income", income)
	}
	if selfEmployed {
		return decimal.Zero, nil
	}
	return decimal.Min(income, p.InsurableCeiling).Mul(p.PremiumRate), nil
}
