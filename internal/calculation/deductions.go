package calculation

import (
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
)

// BaseDeduction computes the employer-equivalent fraction of the tier-1
// contribution that the self-employed may deduct, having paid the employer
// half themselves: ((baseRate - addedRate) / (2 * baseRate)) * tier1.
// Employees deduct none of the base layer.
func BaseDeduction(tier1Contribution decimal.Decimal, selfEmployed bool, p domain.PensionParams) decimal.Decimal {
	if !selfEmployed {
		return decimal.Zero
	}
	return p.BaseRate.Sub(p.AddedRate).Div(p.BaseRate.Mul(two)).Mul(tier1Contribution)
}

// EnhancedDeduction computes the enhanced pension layer, deductible for
// everyone: the added-rate share of the tier-1 contribution plus the whole
// tier-2 contribution.
func EnhancedDeduction(tier1Contribution, tier2Contribution decimal.Decimal, p domain.PensionParams) decimal.Decimal {
	return p.AddedRate.Div(p.BaseRate).Mul(tier1Contribution).Add(tier2Contribution)
}

// TotalTaxDeduction is the portion of pension contributions subtracted from
// gross income to reach taxable income. It is strictly less than the total
// contribution; the remainder earns a credit instead.
func TotalTaxDeduction(tier1Contribution, tier2Contribution decimal.Decimal, selfEmployed bool, p domain.PensionParams) decimal.Decimal {
	base := BaseDeduction(tier1Contribution, selfEmployed, p)
	enhanced := EnhancedDeduction(tier1Contribution, tier2Contribution, p)
	return base.Add(enhanced)
}
