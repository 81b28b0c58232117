package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

// terminationRecipe fixes which entitlements a termination reason enables.
// The five reasons share one code path; only the recipe differs.
type terminationRecipe struct {
	// Share of the notice period paid out as an indemnified (tax-exempt)
	// earnings line: 1 for dismissal without cause, 1/2 for mutual
	// agreement, 0 otherwise.
	noticeFraction decimal.Decimal
	// Resignation only: deduct the notice value when it was not worked.
	deductUnworkedNotice bool
	// Proportional 13th salary accrues.
	thirteenth bool
	// Entitlement accrual is projected through the indemnified notice
	// period (statutory fiction that employment continues through it).
	projectNotice bool
	// Proportional vacation plus constitutional third accrues.
	accruedVacation bool
	// Selects the FGTS penalty rate from the table; nil means no penalty.
	fgtsPenaltyRate func(*domain.LegalParameters) decimal.Decimal
	// Unemployment-insurance eligibility, surfaced as metadata.
	unemploymentInsurance bool
}

var terminationRecipes = map[domain.TerminationReason]terminationRecipe{
	domain.ReasonWithoutCause: {
		noticeFraction:  decimal.NewFromInt(1),
		thirteenth:      true,
		projectNotice:   true,
		accruedVacation: true,
		fgtsPenaltyRate: func(p *domain.LegalParameters) decimal.Decimal {
			return p.FGTS.PenaltyNoCauseRate
		},
		unemploymentInsurance: true,
	},
	domain.ReasonResignation: {
		noticeFraction:       decimal.Zero,
		deductUnworkedNotice: true,
		thirteenth:           true,
		accruedVacation:      true,
	},
	domain.ReasonMutualAgreement: {
		noticeFraction:  decimal.NewFromFloat(0.5),
		thirteenth:      true,
		projectNotice:   true,
		accruedVacation: true,
		fgtsPenaltyRate: func(p *domain.LegalParameters) decimal.Decimal {
			return p.FGTS.PenaltyMutualRate
		},
	},
	domain.ReasonForCause: {
		noticeFraction: decimal.Zero,
	},
	domain.ReasonContractExpiry: {
		noticeFraction:        decimal.Zero,
		thirteenth:            true,
		projectNotice:         true,
		accruedVacation:       true,
		unemploymentInsurance: true,
	},
}

// TerminationCalculator produces the full itemized settlement for a
// contract termination.
type TerminationCalculator struct {
	params *domain.LegalParameters
}

// NewTerminationCalculator creates a termination calculator bound to one
// fiscal table.
func NewTerminationCalculator(p *domain.LegalParameters) *TerminationCalculator {
	return &TerminationCalculator{params: p}
}

// Calculate builds the settlement for the input's termination reason. INSS
// is withheld per earnings line (each line is its own taxable event); IRRF
// is withheld once on the sum of taxable lines net of their INSS.
// Indemnified notice and the FGTS penalty are exempt from both.
func (c *TerminationCalculator) Calculate(input domain.TerminationInput) (*domain.CalculationResult, error) {
	if err := c.validate(input); err != nil {
		return nil, err
	}

	recipe := terminationRecipes[input.Reason]
	p := c.params
	daily := DailyRate(input.GrossSalary)
	admission := civil(input.AdmissionDate)
	termination := civil(input.TerminationDate)

	totalMonths := MonthsBetween(admission, termination, p)
	years := totalMonths / 12
	noticeDays := NoticePeriodDays(years, p)

	indemnifiedDays := int(recipe.noticeFraction.Mul(decimal.NewFromInt(int64(noticeDays))).IntPart())
	reference := termination
	if recipe.projectNotice {
		reference = termination.AddDate(0, 0, indemnifiedDays)
	}

	result := &domain.CalculationResult{
		Metadata: domain.Metadata{
			YearsOfService:        years,
			NoticeDays:            noticeDays,
			UnemploymentInsurance: recipe.unemploymentInsurance,
		},
	}
	if recipe.projectNotice {
		result.Metadata.ProjectedEndDate = &reference
	}

	// Taxable earnings accumulate per-line INSS; exempt lines touch neither
	// base.
	taxableSum := decimal.Zero
	inssSum := decimal.Zero
	addTaxable := func(label string, amount decimal.Decimal, detail string) {
		result.AddEarning(label, amount, detail)
		taxableSum = taxableSum.Add(amount)
		inssSum = inssSum.Add(SocialSecurityWithholding(amount, p))
	}

	// Balance of salary reconciles with the payroll month, so it uses the
	// actual calendar length of the termination month, not the 30-day
	// convention.
	workedDays := termination.Day()
	balance := input.GrossSalary.
		Div(decimal.NewFromInt(int64(daysInMonth(termination)))).
		Mul(decimal.NewFromInt(int64(workedDays))).
		Round(2)
	addTaxable(LabelBalanceOfSalary, balance, fmt.Sprintf("%d dia(s)", workedDays))

	if indemnifiedDays > 0 {
		notice := daily.Mul(decimal.NewFromInt(int64(indemnifiedDays))).Round(2)
		result.AddEarning(LabelIndemnifiedNotice, notice,
			fmt.Sprintf("%d dia(s), %s", indemnifiedDays, detailExempt))
	}

	thirteenthValue := decimal.Zero
	if recipe.thirteenth {
		yearStart := time.Date(termination.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		accrualStart := yearStart
		if admission.After(yearStart) {
			accrualStart = admission
		}
		months := MonthsBetween(accrualStart, reference, p)
		if months > 12 {
			months = 12
		}
		if months > 0 {
			thirteenthValue = input.GrossSalary.
				Div(twelve).
				Mul(decimal.NewFromInt(int64(months))).
				Round(2)
			result.Metadata.ThirteenthMonths = months
			addTaxable(LabelProportionalThirteenth, thirteenthValue,
				fmt.Sprintf("%d/12 avos", months))
		}
	}

	if recipe.accruedVacation {
		months := MonthsBetween(admission, reference, p) % 12
		if months > 0 {
			value := input.GrossSalary.
				Div(twelve).
				Mul(decimal.NewFromInt(int64(months))).
				Round(2)
			third := value.Mul(p.ConstitutionalThird).Round(2)
			result.Metadata.VacationMonths = months
			addTaxable(LabelProportionalVacation, value, fmt.Sprintf("%d/12 avos", months))
			addTaxable(LabelProportionalVacationThird, third, "")
		}
	}

	if input.UnusedVacationDays > 0 {
		value := daily.Mul(decimal.NewFromInt(int64(input.UnusedVacationDays))).Round(2)
		third := value.Mul(p.ConstitutionalThird).Round(2)
		addTaxable(LabelUnusedVacation, value,
			fmt.Sprintf("%d dia(s)", input.UnusedVacationDays))
		addTaxable(LabelUnusedVacationThird, third, "")
	}

	if recipe.fgtsPenaltyRate != nil && input.FGTSBalance.GreaterThan(decimal.Zero) {
		rate := recipe.fgtsPenaltyRate(p)
		penalty := input.FGTSBalance.Mul(rate).Round(2)
		result.AddEarning(LabelFGTSPenalty, penalty,
			fmt.Sprintf("%s%% sobre %s, %s",
				rate.Mul(decimal.NewFromInt(100)).StringFixed(0),
				input.FGTSBalance.StringFixed(2), detailExempt))
	}

	if recipe.deductUnworkedNotice && !input.NoticeWorked {
		owed := daily.Mul(decimal.NewFromInt(int64(noticeDays))).Round(2)
		result.AddDeduction(LabelNoticeDeduction, owed,
			fmt.Sprintf("%d dia(s)", noticeDays))
	}

	result.AddDeduction(LabelINSS, inssSum.Round(2), "por verba")
	irrf := IncomeTaxWithholding(taxableSum.Sub(inssSum), input.Dependents, p)
	result.AddDeduction(LabelIRRF, irrf, "sobre a soma das verbas tributáveis")

	// Employer deposit owed to the fund for the final month; informational,
	// not part of the settlement totals.
	deposit := p.FGTS.DepositRate.Mul(balance.Add(thirteenthValue)).Round(2)
	result.Metadata.FGTSMonthDeposit = &deposit

	result.Finalize()
	return result, nil
}

func (c *TerminationCalculator) validate(input domain.TerminationInput) error {
	var violations []string
	if input.GrossSalary.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, "gross salary must be positive")
	}
	if input.Dependents < 0 {
		violations = append(violations, "dependents cannot be negative")
	}
	if input.AdmissionDate.IsZero() {
		violations = append(violations, "admission date is required")
	}
	if input.TerminationDate.IsZero() {
		violations = append(violations, "termination date is required")
	}
	if !input.AdmissionDate.IsZero() && !input.TerminationDate.IsZero() &&
		!civil(input.AdmissionDate).Before(civil(input.TerminationDate)) {
		violations = append(violations, "admission date must precede termination date")
	}
	if !input.Reason.Valid() {
		violations = append(violations, fmt.Sprintf("unrecognized termination reason %q", input.Reason))
	}
	if input.FGTSBalance.LessThan(decimal.Zero) {
		violations = append(violations, "FGTS balance cannot be negative")
	}
	if input.UnusedVacationDays < 0 || input.UnusedVacationDays > 30 {
		violations = append(violations, "unused vacation days must be between 0 and 30")
	}
	return domain.NewInvalidInput(violations)
}
