package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// ThirteenthCalculator computes the year-end bonus (13º salário), either as
// a single integral payment or split into the statutory advance plus a
// settlement installment.
type ThirteenthCalculator struct {
	params *domain.LegalParameters
}

// NewThirteenthCalculator creates a year-end-bonus calculator bound to one
// fiscal table.
func NewThirteenthCalculator(p *domain.LegalParameters) *ThirteenthCalculator {
	return &ThirteenthCalculator{params: p}
}

// Calculate produces the bonus breakdown. Gross is salary/12 per month
// worked. In split mode the first installment is paid with zero
// withholding; the second settles the full withholding computed on the
// whole gross.
func (c *ThirteenthCalculator) Calculate(input domain.ThirteenthInput) (*domain.CalculationResult, error) {
	var violations []string
	if input.GrossSalary.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, "gross salary must be positive")
	}
	if input.Dependents < 0 {
		violations = append(violations, "dependents cannot be negative")
	}
	if input.MonthsWorked < 1 || input.MonthsWorked > 12 {
		violations = append(violations, "months worked must be between 1 and 12")
	}
	if input.FirstInstallmentPaid.LessThan(decimal.Zero) {
		violations = append(violations, "first installment paid cannot be negative")
	}
	if err := domain.NewInvalidInput(violations); err != nil {
		return nil, err
	}

	gross := input.GrossSalary.
		Div(twelve).
		Mul(decimal.NewFromInt(int64(input.MonthsWorked))).
		Round(2)

	half := gross.Div(decimal.NewFromInt(2)).Round(2)
	if input.Split && input.FirstInstallmentPaid.GreaterThan(half) {
		return nil, domain.NewInvalidInput([]string{
			fmt.Sprintf("first installment paid (%s) exceeds half of the gross bonus (%s)",
				input.FirstInstallmentPaid.StringFixed(2), half.StringFixed(2)),
		})
	}

	inss := SocialSecurityWithholding(gross, c.params)
	irrf := IncomeTaxWithholding(gross.Sub(inss), input.Dependents, c.params)

	result := &domain.CalculationResult{
		Metadata: domain.Metadata{ThirteenthMonths: input.MonthsWorked},
	}
	result.AddEarning(LabelThirteenth, gross,
		fmt.Sprintf("%d/12 avos", input.MonthsWorked))
	result.AddDeduction(LabelINSS, inss, "")
	result.AddDeduction(LabelIRRF, irrf, "")
	result.Finalize()

	if input.Split {
		first := half
		if input.FirstInstallmentPaid.GreaterThan(decimal.Zero) {
			first = input.FirstInstallmentPaid
		}
		// The advance carries no withholding; the settlement installment
		// absorbs the full withholding on the whole gross.
		second := gross.Sub(first).Sub(inss).Sub(irrf)
		result.Metadata.FirstInstallment = &first
		result.Metadata.SecondInstallment = &second
	}

	return result, nil
}
