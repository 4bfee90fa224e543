package config

import (
	"fmt"
	"os"

	"github.com/canwage/canwage/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of tax year configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a tax year parameter set from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxYear, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var taxYear domain.TaxYear
	if err := yaml.Unmarshal(data, &taxYear); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateTaxYear(&taxYear); err != nil {
		return nil, fmt.Errorf("tax year validation failed: %w", err)
	}

	return &taxYear, nil
}

// ValidateTaxYear validates a loaded tax year parameter set
func (ip *InputParser) ValidateTaxYear(taxYear *domain.TaxYear) error {
	if err := ip.validateBracketTable("federal", taxYear.Federal); err != nil {
		return err
	}
	if err := ip.validateBracketTable("provincial", taxYear.Provincial); err != nil {
		return err
	}
	// The federal basic personal amount phases down between the 3rd and 4th
	// federal tier bounds, so at least four tiers must exist.
	if len(taxYear.Federal) < 4 {
		return fmt.Errorf("federal bracket table needs at least 4 tiers, got %d", len(taxYear.Federal))
	}
	if err := ip.validatePension(&taxYear.Pension); err != nil {
		return fmt.Errorf("pension validation failed: %w", err)
	}
	if err := ip.validateInsurance(&taxYear.Insurance); err != nil {
		return fmt.Errorf("insurance validation failed: %w", err)
	}
	if err := ip.validateCredits(taxYear); err != nil {
		return fmt.Errorf("credit validation failed: %w", err)
	}
	if taxYear.MaxPayrollDeductionRate.LessThanOrEqual(decimal.Zero) || taxYear.MaxPayrollDeductionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("max payroll deduction rate must be between 0 and 1 exclusive")
	}
	return nil
}

// validateBracketTable validates tier ordering and rates
func (ip *InputParser) validateBracketTable(name string, table domain.BracketTable) error {
	if len(table) == 0 {
		return fmt.Errorf("%s bracket table is empty", name)
	}
	prev := decimal.Zero
	for i, tier := range table {
		if tier.Rate.IsNegative() || tier.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s tier %d: rate must be in [0, 1)", name, i)
		}
		if tier.Unbounded {
			if i != len(table)-1 {
				return fmt.Errorf("%s tier %d: only the final tier may be unbounded", name, i)
			}
			continue
		}
		if i == len(table)-1 {
			return fmt.Errorf("%s: final tier must be unbounded", name)
		}
		if tier.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("%s tier %d: upper bounds must be strictly increasing", name, i)
		}
		prev = tier.UpperBound
	}
	return nil
}

// validatePension validates the two-tier pension scheme
func (ip *InputParser) validatePension(p *domain.PensionParams) error {
	if p.BasicExemption.IsNegative() {
		return fmt.Errorf("basic exemption cannot be negative")
	}
	if p.Tier1Ceiling.LessThanOrEqual(p.BasicExemption) {
		return fmt.Errorf("tier 1 ceiling must exceed the basic exemption")
	}
	if p.Tier2Ceiling.LessThanOrEqual(p.Tier1Ceiling) {
		return fmt.Errorf("tier 2 ceiling must exceed the tier 1 ceiling")
	}
	if p.BaseRate.LessThanOrEqual(decimal.Zero) || p.BaseRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("base rate must be in (0, 1)")
	}
	if p.AddedRate.IsNegative() || p.AddedRate.GreaterThanOrEqual(p.BaseRate) {
		return fmt.Errorf("added rate must be non-negative and below the base rate")
	}
	if p.Tier2Rate.IsNegative() || p.Tier2Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("tier 2 rate must be in [0, 1)")
	}
	return nil
}

// validateInsurance validates the insurance premium scheme
func (ip *InputParser) validateInsurance(p *domain.InsuranceParams) error {
	if p.InsurableCeiling.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("insurable ceiling must be positive")
	}
	if p.PremiumRate.IsNegative() || p.PremiumRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("premium rate must be in [0, 1)")
	}
	return nil
}

// validateCredits validates the credit parameter set
func (ip *InputParser) validateCredits(taxYear *domain.TaxYear) error {
	bp := taxYear.BasicPersonal
	if bp.FederalMin.IsNegative() {
		return fmt.Errorf("federal basic personal minimum cannot be negative")
	}
	if bp.FederalMax.LessThan(bp.FederalMin) {
		return fmt.Errorf("federal basic personal maximum cannot be below the minimum")
	}
	if bp.ProvincialAmount.IsNegative() {
		return fmt.Errorf("provincial basic personal amount cannot be negative")
	}
	if taxYear.EmploymentAmountCap.IsNegative() {
		return fmt.Errorf("employment amount cap cannot be negative")
	}
	return nil
}
