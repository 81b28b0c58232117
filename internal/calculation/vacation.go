package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

// VacationCalculator computes a paid-leave settlement, including the
// constitutional third and the tax-exempt abono pecuniário (sold leave).
type VacationCalculator struct {
	params *domain.LegalParameters
}

// NewVacationCalculator creates a vacation calculator bound to one fiscal
// table.
func NewVacationCalculator(p *domain.LegalParameters) *VacationCalculator {
	return &VacationCalculator{params: p}
}

// Calculate produces the vacation payout. RequestedDays is the slice of the
// entitlement being settled; SoldDays of those are converted to cash. The
// sold portion and its third appear in gross but are excluded from the
// INSS/IRRF base by statute.
func (c *VacationCalculator) Calculate(input domain.VacationInput) (*domain.CalculationResult, error) {
	var violations []string
	if input.GrossSalary.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, "gross salary must be positive")
	}
	if input.Dependents < 0 {
		violations = append(violations, "dependents cannot be negative")
	}
	if input.UnjustifiedAbsences < 0 {
		violations = append(violations, "unjustified absences cannot be negative")
	}
	if input.RequestedDays <= 0 {
		violations = append(violations, "requested days must be positive")
	}
	if input.SoldDays < 0 {
		violations = append(violations, "sold days cannot be negative")
	}
	if err := domain.NewInvalidInput(violations); err != nil {
		return nil, err
	}

	entitled := VacationEntitlementDays(input.UnjustifiedAbsences, c.params)
	taken := input.RequestedDays - input.SoldDays

	if input.RequestedDays > entitled {
		violations = append(violations,
			fmt.Sprintf("requested days (%d) exceed entitled days (%d)", input.RequestedDays, entitled))
	}
	if maxSellable := entitled / 3; input.SoldDays > maxSellable {
		violations = append(violations,
			fmt.Sprintf("sold days (%d) exceed one third of entitlement (%d)", input.SoldDays, maxSellable))
	}
	// The non-sellable two thirds must actually be rested.
	if minRest := entitled - entitled/3; taken < minRest {
		violations = append(violations,
			fmt.Sprintf("days taken (%d) fall short of the mandatory rest of %d days", taken, minRest))
	}
	if err := domain.NewInvalidInput(violations); err != nil {
		return nil, err
	}

	daily := DailyRate(input.GrossSalary)
	value := daily.Mul(decimal.NewFromInt(int64(taken))).Round(2)
	third := value.Mul(c.params.ConstitutionalThird).Round(2)

	result := &domain.CalculationResult{
		Metadata: domain.Metadata{
			EntitledVacationDays: entitled,
			TakenVacationDays:    taken,
			SoldVacationDays:     input.SoldDays,
		},
	}
	result.AddEarning(LabelVacation, value, fmt.Sprintf("%d dia(s)", taken))
	result.AddEarning(LabelVacationThird, third, "")

	if input.SoldDays > 0 {
		sold := daily.Mul(decimal.NewFromInt(int64(input.SoldDays))).Round(2)
		soldThird := sold.Mul(c.params.ConstitutionalThird).Round(2)
		result.AddEarning(LabelVacationBonus, sold,
			fmt.Sprintf("%d dia(s), %s", input.SoldDays, detailExempt))
		result.AddEarning(LabelVacationBonusThird, soldThird, detailExempt)
	}

	taxBase := value.Add(third)
	inss := SocialSecurityWithholding(taxBase, c.params)
	result.AddDeduction(LabelINSS, inss, "")

	var irrf decimal.Decimal
	if input.SimplifiedIRRF {
		irrf = IncomeTaxWithholdingSimplified(taxBase.Sub(inss), c.params)
	} else {
		irrf = IncomeTaxWithholding(taxBase.Sub(inss), input.Dependents, c.params)
	}
	result.AddDeduction(LabelIRRF, irrf, "")

	result.Finalize()
	return result, nil
}
