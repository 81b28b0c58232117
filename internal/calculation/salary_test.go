package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trabalhista/calculadora/internal/config"
	"github.com/trabalhista/calculadora/internal/domain"
)

func TestSalaryCalculatorGolden(t *testing.T) {
	// 3000.00 gross, no dependents, no extra deductions, 2025 tables.
	calc := NewSalaryCalculator(config.Default2025())

	result, err := calc.Calculate(domain.SalaryInput{GrossSalary: decimal.NewFromInt(3000)})
	require.NoError(t, err)

	inss, ok := result.Deduction(LabelINSS)
	require.True(t, ok)
	assertDecimal(t, "253.41", inss.Amount)

	irrf, ok := result.Deduction(LabelIRRF)
	require.True(t, ok)
	assertDecimal(t, "23.83", irrf.Amount)

	assertDecimal(t, "3000.00", result.Totals.Gross)
	assertDecimal(t, "277.24", result.Totals.Deductions)
	assertDecimal(t, "2722.76", result.Totals.Net)
}

func TestSalaryCalculatorFamilyAllowance(t *testing.T) {
	calc := NewSalaryCalculator(config.Default2025())

	t.Run("eligible below ceiling", func(t *testing.T) {
		result, err := calc.Calculate(domain.SalaryInput{
			GrossSalary:       decimal.NewFromInt(1500),
			DependentsUnder14: 2,
		})
		require.NoError(t, err)

		allowance, ok := result.Earning(LabelFamilyAllowance)
		require.True(t, ok)
		assertDecimal(t, "130.00", allowance.Amount)

		// INSS on gross only; allowance is outside the base.
		inss, _ := result.Deduction(LabelINSS)
		assertDecimal(t, "112.50", inss.Amount)
		assertDecimal(t, "1517.50", result.Totals.Net)
	})

	t.Run("not eligible above ceiling", func(t *testing.T) {
		result, err := calc.Calculate(domain.SalaryInput{
			GrossSalary:       decimal.NewFromInt(3000),
			DependentsUnder14: 2,
		})
		require.NoError(t, err)

		_, ok := result.Earning(LabelFamilyAllowance)
		assert.False(t, ok)
	})
}

func TestSalaryCalculatorOtherDeductions(t *testing.T) {
	calc := NewSalaryCalculator(config.Default2025())

	result, err := calc.Calculate(domain.SalaryInput{
		GrossSalary: decimal.NewFromInt(3000),
		OtherDeductions: []domain.LineItem{
			{Label: "Vale-transporte", Amount: decimal.RequireFromString("180.00")},
			{Label: "Plano de saúde", Amount: decimal.RequireFromString("250.00")},
		},
	})
	require.NoError(t, err)

	vt, ok := result.Deduction("Vale-transporte")
	require.True(t, ok)
	assertDecimal(t, "180.00", vt.Amount)
	assertDecimal(t, "2292.76", result.Totals.Net) // 2722.76 - 180 - 250
}

func TestSalaryCalculatorSimplifiedIRRF(t *testing.T) {
	calc := NewSalaryCalculator(config.Default2025())

	result, err := calc.Calculate(domain.SalaryInput{
		GrossSalary:    decimal.NewFromInt(3000),
		SimplifiedIRRF: true,
	})
	require.NoError(t, err)

	// 3000 - 253.41 = 2746.59; flat 20% discount lands below the
	// exemption band.
	irrf, _ := result.Deduction(LabelIRRF)
	assertDecimal(t, "0", irrf.Amount)
	assertDecimal(t, "2746.59", result.Totals.Net)
}

func TestSalaryCalculatorInvalidInput(t *testing.T) {
	calc := NewSalaryCalculator(config.Default2025())

	_, err := calc.Calculate(domain.SalaryInput{
		GrossSalary:       decimal.Zero,
		Dependents:        -1,
		DependentsUnder14: -2,
	})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))

	var iie *domain.InvalidInputError
	require.ErrorAs(t, err, &iie)
	assert.Len(t, iie.Violations, 3, "all violations are reported at once")
}
