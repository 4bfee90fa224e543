package calculation

import (
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
)

// BracketTax computes the gross progressive tax owed on taxableAmount under
// the given bracket table. Tiers are walked in ascending order: every fully
// consumed tier contributes its full width at its marginal rate, and the
// tier the amount falls inside contributes the remainder. An amount landing
// exactly on a tier boundary is taxed entirely within that tier, so the
// accumulated tax is continuous across boundaries.
func BracketTax(taxableAmount decimal.Decimal, table domain.BracketTable) (decimal.Decimal, error) {
	if taxableAmount.IsNegative() {
		return decimal.Zero, negativeInput("bracket_tax", "taxableAmount", taxableAmount)
	}

	tax := decimal.Zero
	prev := decimal.Zero
	for _, tier := range table {
		if !tier.Unbounded && taxableAmount.GreaterThan(tier.UpperBound) {
			tax = tax.Add(tier.UpperBound.Sub(prev).Mul(tier.Rate))
			prev = tier.UpperBound
			continue
		}
		tax = tax.Add(taxableAmount.Sub(prev).Mul(tier.Rate))
		break
	}
	return tax, nil
}
