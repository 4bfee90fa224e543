package calculation

import (
	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
)

// Every credit below is expressed in dollars of tax reduction, i.e. already
// multiplied by the relevant lowest marginal rate.

// FederalBasicCredit computes the federal basic personal amount credit. The
// amount is FederalMax at or below the 3rd federal tier bound, FederalMin at
// or above the 4th, and linearly interpolated between the two.
func FederalBasicCredit(taxableIncome decimal.Decimal, ty domain.TaxYear) decimal.Decimal {
	phaseStart := ty.Federal.UpperBoundOf(2)
	phaseEnd := ty.Federal.UpperBoundOf(3)

	amount := ty.BasicPersonal.FederalMax
	switch {
	case taxableIncome.GreaterThanOrEqual(phaseEnd):
		amount = ty.BasicPersonal.FederalMin
	case taxableIncome.GreaterThan(phaseStart):
		span := ty.BasicPersonal.FederalMax.Sub(ty.BasicPersonal.FederalMin)
		fraction := taxableIncome.Sub(phaseStart).Div(phaseEnd.Sub(phaseStart))
		amount = ty.BasicPersonal.FederalMax.Sub(span.Mul(fraction))
	}
	return amount.Mul(ty.Federal.LowestRate())
}

// ProvincialBasicCredit computes the flat provincial basic personal amount
// credit.
func ProvincialBasicCredit(ty domain.TaxYear) decimal.Decimal {
	return ty.BasicPersonal.ProvincialAmount.Mul(ty.Provincial.LowestRate())
}

// EmploymentCredit computes the employment amount credit on gross income,
// capped. The self-employed do not receive it.
func EmploymentCredit(grossIncome decimal.Decimal, selfEmployed bool, ty domain.TaxYear) decimal.Decimal {
	if selfEmployed {
		return decimal.Zero
	}
	return decimal.Min(ty.EmploymentAmountCap, grossIncome).Mul(ty.Federal.LowestRate())
}

// PensionContributionCredit computes the credit on the non-deductible part
// of pension contributions, at the combined lowest federal and provincial
// rates. For the self-employed only the employee-equivalent half of that
// base is creditable.
func PensionContributionCredit(totalPension, enhancedDeduction decimal.Decimal, selfEmployed bool, ty domain.TaxYear) decimal.Decimal {
	base := totalPension.Sub(enhancedDeduction)
	if selfEmployed {
		base = base.Div(two)
	}
	return ty.Federal.LowestRate().Add(ty.Provincial.LowestRate()).Mul(base)
}

// InsurancePremiumCredit computes the credit on the insurance premium at the
// combined lowest federal and provincial rates.
func InsurancePremiumCredit(premium decimal.Decimal, ty domain.TaxYear) decimal.Decimal {
	return ty.Federal.LowestRate().Add(ty.Provincial.LowestRate()).Mul(premium)
}

// TotalCredits sums the five non-refundable credits offsetting gross tax.
func TotalCredits(grossIncome, taxableIncome, totalPension, enhancedDeduction, premium decimal.Decimal, selfEmployed bool, ty domain.TaxYear) decimal.Decimal {
	return FederalBasicCredit(taxableIncome, ty).
		Add(ProvincialBasicCredit(ty)).
		Add(EmploymentCredit(grossIncome, selfEmployed, ty)).
		Add(PensionContributionCredit(totalPension, enhancedDeduction, selfEmployed, ty)).
		Add(InsurancePremiumCredit(premium, ty))
}
