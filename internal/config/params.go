package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/trabalhista/calculadora/internal/domain"
)

// LoadParameters reads a fiscal table from a YAML file and validates its
// well-formedness. Malformed tables are a configuration error caught here;
// the calculation engine trusts the table by contract.
func LoadParameters(filename string) (*domain.LegalParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.LegalParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParameters checks the table invariants: positive constants,
// ascending contiguous brackets, terminal fallback rows, rates within
// [0, 1].
func ValidateParameters(p *domain.LegalParameters) error {
	if p.MinimumWage.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("minimum wage must be positive")
	}
	if p.INSSCeiling.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("INSS ceiling must be positive")
	}
	if len(p.INSSBrackets) == 0 {
		return fmt.Errorf("at least one INSS bracket is required")
	}
	previous := decimal.Zero
	for i, b := range p.INSSBrackets {
		if b.UpperBound.LessThanOrEqual(previous) {
			return fmt.Errorf("INSS bracket %d: upper bound must ascend strictly", i)
		}
		if err := validRate(b.Rate); err != nil {
			return fmt.Errorf("INSS bracket %d: %w", i, err)
		}
		previous = b.UpperBound
	}
	if last := p.INSSBrackets[len(p.INSSBrackets)-1]; last.UpperBound.LessThan(p.INSSCeiling) {
		return fmt.Errorf("INSS brackets must cover the ceiling (%s)", p.INSSCeiling.StringFixed(2))
	}

	if len(p.IRRFBrackets) == 0 {
		return fmt.Errorf("at least one IRRF bracket is required")
	}
	previous = decimal.Zero
	for i, b := range p.IRRFBrackets {
		// The terminal bracket is unbounded; its bound is ignored.
		if i < len(p.IRRFBrackets)-1 && b.UpperBound.LessThanOrEqual(previous) {
			return fmt.Errorf("IRRF bracket %d: upper bound must ascend strictly", i)
		}
		if err := validRate(b.Rate); err != nil {
			return fmt.Errorf("IRRF bracket %d: %w", i, err)
		}
		if b.Deduction.LessThan(decimal.Zero) {
			return fmt.Errorf("IRRF bracket %d: deduction cannot be negative", i)
		}
		previous = b.UpperBound
	}

	if p.DependentDeduction.LessThan(decimal.Zero) {
		return fmt.Errorf("dependent deduction cannot be negative")
	}

	if len(p.VacationEntitlement) == 0 {
		return fmt.Errorf("at least one vacation entitlement row is required")
	}
	prevAbsences := -1
	for i, row := range p.VacationEntitlement {
		if i < len(p.VacationEntitlement)-1 && row.MaxAbsences <= prevAbsences {
			return fmt.Errorf("vacation entitlement row %d: max absences must ascend strictly", i)
		}
		if row.EntitledDays < 0 || row.EntitledDays > 30 {
			return fmt.Errorf("vacation entitlement row %d: entitled days must be between 0 and 30", i)
		}
		prevAbsences = row.MaxAbsences
	}

	for name, rate := range map[string]decimal.Decimal{
		"FGTS deposit rate":          p.FGTS.DepositRate,
		"FGTS no-cause penalty rate": p.FGTS.PenaltyNoCauseRate,
		"FGTS mutual penalty rate":   p.FGTS.PenaltyMutualRate,
		"simplified deduction rate":  p.SimplifiedDeduction.Rate,
	} {
		if err := validRate(rate); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if p.Notice.BaseDays <= 0 {
		return fmt.Errorf("notice base days must be positive")
	}
	if p.Notice.ExtraDaysPerYear < 0 {
		return fmt.Errorf("notice extra days per year cannot be negative")
	}
	if p.Notice.MaxTotalDays < p.Notice.BaseDays {
		return fmt.Errorf("notice max total days cannot be below the base days")
	}

	if p.ConstitutionalThird.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("constitutional third must be positive")
	}
	if p.MonthFractionThresholdDays <= 0 || p.MonthFractionThresholdDays > 30 {
		return fmt.Errorf("month fraction threshold must be between 1 and 30 days")
	}

	return nil
}

func validRate(rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rate must be between 0 and 1")
	}
	return nil
}

// Default2025 returns the built-in fiscal-2025 table (tables in force from
// May 2025). Each call returns a fresh value, so no caller can mutate the
// table another calculation reads.
func Default2025() *domain.LegalParameters {
	return &domain.LegalParameters{
		Metadata: domain.ParametersMetadata{
			FiscalYear:  2025,
			LastUpdated: "2025-05-01",
			Description: "Tabelas INSS/IRRF vigentes a partir de maio de 2025",
		},
		MinimumWage: decimal.NewFromFloat(1518.00),
		INSSCeiling: decimal.NewFromFloat(8157.41),
		INSSBrackets: []domain.ContributionBracket{
			{UpperBound: decimal.NewFromFloat(1518.00), Rate: decimal.NewFromFloat(0.075)},
			{UpperBound: decimal.NewFromFloat(2793.88), Rate: decimal.NewFromFloat(0.09)},
			{UpperBound: decimal.NewFromFloat(4190.83), Rate: decimal.NewFromFloat(0.12)},
			{UpperBound: decimal.NewFromFloat(8157.41), Rate: decimal.NewFromFloat(0.14)},
		},
		IRRFBrackets: []domain.IncomeTaxBracket{
			{UpperBound: decimal.NewFromFloat(2428.80), Rate: decimal.Zero, Deduction: decimal.Zero},
			{UpperBound: decimal.NewFromFloat(2826.65), Rate: decimal.NewFromFloat(0.075), Deduction: decimal.NewFromFloat(182.16)},
			{UpperBound: decimal.NewFromFloat(3751.05), Rate: decimal.NewFromFloat(0.15), Deduction: decimal.NewFromFloat(394.16)},
			{UpperBound: decimal.NewFromFloat(4664.68), Rate: decimal.NewFromFloat(0.225), Deduction: decimal.NewFromFloat(675.49)},
			{UpperBound: decimal.Zero, Rate: decimal.NewFromFloat(0.275), Deduction: decimal.NewFromFloat(908.73)},
		},
		DependentDeduction: decimal.NewFromFloat(189.59),
		SimplifiedDeduction: domain.SimplifiedDeduction{
			Rate:    decimal.NewFromFloat(0.20),
			Ceiling: decimal.NewFromFloat(607.20),
		},
		FamilyAllowance: domain.FamilyAllowanceRules{
			Quota:              decimal.NewFromFloat(65.00),
			EligibilityCeiling: decimal.NewFromFloat(1906.04),
		},
		VacationEntitlement: []domain.VacationBracket{
			{MaxAbsences: 5, EntitledDays: 30},
			{MaxAbsences: 14, EntitledDays: 24},
			{MaxAbsences: 23, EntitledDays: 18},
			{MaxAbsences: 32, EntitledDays: 12},
			{MaxAbsences: 0, EntitledDays: 0}, // unbounded fallback
		},
		FGTS: domain.FGTSRules{
			DepositRate:        decimal.NewFromFloat(0.08),
			PenaltyNoCauseRate: decimal.NewFromFloat(0.40),
			PenaltyMutualRate:  decimal.NewFromFloat(0.20),
		},
		Notice: domain.NoticeRules{
			BaseDays:         30,
			ExtraDaysPerYear: 3,
			MaxTotalDays:     90,
		},
		ConstitutionalThird:        decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
		MonthFractionThresholdDays: 15,
	}
}
