package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

// SalaryCalculator computes a monthly net-salary breakdown.
type SalaryCalculator struct {
	params *domain.LegalParameters
}

// NewSalaryCalculator creates a salary calculator bound to one fiscal table.
func NewSalaryCalculator(p *domain.LegalParameters) *SalaryCalculator {
	return &SalaryCalculator{params: p}
}

// Calculate produces the itemized monthly payslip: gross salary and family
// allowance as earnings; INSS, IRRF and caller-supplied deductions against
// them. The family allowance is outside both tax bases.
func (c *SalaryCalculator) Calculate(input domain.SalaryInput) (*domain.CalculationResult, error) {
	var violations []string
	if input.GrossSalary.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, "gross salary must be positive")
	}
	if input.Dependents < 0 {
		violations = append(violations, "dependents cannot be negative")
	}
	if input.DependentsUnder14 < 0 {
		violations = append(violations, "dependents under 14 cannot be negative")
	}
	for _, d := range input.OtherDeductions {
		if d.Amount.LessThan(decimal.Zero) {
			violations = append(violations, fmt.Sprintf("deduction %q cannot be negative", d.Label))
		}
	}
	if err := domain.NewInvalidInput(violations); err != nil {
		return nil, err
	}

	result := &domain.CalculationResult{}
	result.AddEarning(LabelGrossSalary, input.GrossSalary.Round(2), "")

	if input.DependentsUnder14 > 0 && input.GrossSalary.LessThanOrEqual(c.params.FamilyAllowance.EligibilityCeiling) {
		allowance := c.params.FamilyAllowance.Quota.
			Mul(decimal.NewFromInt(int64(input.DependentsUnder14))).
			Round(2)
		result.AddEarning(LabelFamilyAllowance, allowance,
			fmt.Sprintf("%d quota(s)", input.DependentsUnder14))
	}

	inss := SocialSecurityWithholding(input.GrossSalary, c.params)
	result.AddDeduction(LabelINSS, inss, "")

	var irrf decimal.Decimal
	if input.SimplifiedIRRF {
		irrf = IncomeTaxWithholdingSimplified(input.GrossSalary.Sub(inss), c.params)
	} else {
		irrf = IncomeTaxWithholding(input.GrossSalary.Sub(inss), input.Dependents, c.params)
	}
	result.AddDeduction(LabelIRRF, irrf, "")

	for _, d := range input.OtherDeductions {
		result.AddDeduction(d.Label, d.Amount.Round(2), d.Detail)
	}

	result.Finalize()
	return result, nil
}
