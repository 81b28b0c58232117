package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trabalhista/calculadora/internal/config"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	assert.True(t, actual.Equal(want), "expected %s, got %s", want, actual)
}

func TestSocialSecurityWithholding(t *testing.T) {
	p := config.Default2025()

	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{"zero base", "0", "0"},
		{"negative base", "-100", "0"},
		{"within first bracket", "1000", "75.00"},
		{"exactly first bracket bound", "1518.00", "113.85"},
		{"second bracket bound", "2793.88", "228.68"},
		{"mid third bracket", "3000", "253.41"},
		{"at the ceiling", "8157.41", "951.63"},
		{"above the ceiling clamps", "10000", "951.63"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SocialSecurityWithholding(decimal.RequireFromString(tt.base), p)
			assertDecimal(t, tt.expected, got)
		})
	}
}

func TestSocialSecurityWithholdingMonotonicity(t *testing.T) {
	p := config.Default2025()

	step := decimal.NewFromInt(137)
	previous := decimal.Zero
	previousEffective := decimal.Zero
	for base := step; base.LessThan(decimal.NewFromInt(12000)); base = base.Add(step) {
		got := SocialSecurityWithholding(base, p)
		require.True(t, got.GreaterThanOrEqual(previous),
			"withholding decreased at base %s: %s < %s", base, got, previous)

		// Effective rate is non-decreasing up to the ceiling.
		if base.LessThanOrEqual(p.INSSCeiling) {
			effective := got.Div(base)
			require.True(t, effective.GreaterThanOrEqual(previousEffective.Sub(decimal.NewFromFloat(0.0001))),
				"effective rate decreased at base %s", base)
			previousEffective = effective
		}
		previous = got
	}
}

func TestSocialSecurityWithholdingContinuity(t *testing.T) {
	p := config.Default2025()
	cent := decimal.NewFromFloat(0.01)

	for _, bracket := range p.INSSBrackets {
		below := SocialSecurityWithholding(bracket.UpperBound, p)
		above := SocialSecurityWithholding(bracket.UpperBound.Add(cent), p)
		diff := above.Sub(below)
		assert.True(t, diff.Abs().LessThanOrEqual(cent),
			"discontinuity at bracket bound %s: %s vs %s", bracket.UpperBound, below, above)
	}
}

func TestIncomeTaxWithholding(t *testing.T) {
	p := config.Default2025()

	tests := []struct {
		name       string
		base       string
		dependents int
		expected   string
	}{
		{"zero base", "0", 0, "0"},
		{"negative base", "-50", 0, "0"},
		{"exempt band", "2428.80", 0, "0"},
		{"just above exemption rounds to zero", "2428.81", 0, "0.00"},
		{"second bracket", "2746.59", 0, "23.83"},
		{"top bracket", "5000", 0, "466.27"},
		{"dependents shrink the base", "3000", 2, "14.40"},
		{"dependents push below exemption", "2500", 1, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncomeTaxWithholding(decimal.RequireFromString(tt.base), tt.dependents, p)
			assertDecimal(t, tt.expected, got)
		})
	}
}

// The marginal-with-deduction table may jump at boundaries by design, but
// its deduction constants must make rate*upperBound - deduction agree
// between adjacent brackets to within one cent.
func TestIncomeTaxBracketConsistency(t *testing.T) {
	p := config.Default2025()
	cent := decimal.NewFromFloat(0.01)

	for i := 0; i < len(p.IRRFBrackets)-1; i++ {
		lower := p.IRRFBrackets[i]
		upper := p.IRRFBrackets[i+1]
		atBoundaryLower := lower.Rate.Mul(lower.UpperBound).Sub(lower.Deduction)
		atBoundaryUpper := upper.Rate.Mul(lower.UpperBound).Sub(upper.Deduction)
		diff := atBoundaryLower.Sub(atBoundaryUpper).Abs()
		assert.True(t, diff.LessThanOrEqual(cent),
			"brackets %d and %d disagree at %s by %s", i, i+1, lower.UpperBound, diff)
	}
}

func TestIncomeTaxWithholdingSimplified(t *testing.T) {
	p := config.Default2025()

	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{"zero base", "0", "0"},
		{"flat discount below cap", "3000", "0"},    // 3000 - 600 = 2400, exempt
		{"discount capped", "5000", "312.89"},       // 5000 - 607.20 = 4392.80
		{"high base keeps cap", "10000", "1674.29"}, // 9392.80 * 0.275 - 908.73
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncomeTaxWithholdingSimplified(decimal.RequireFromString(tt.base), p)
			assertDecimal(t, tt.expected, got)
		})
	}
}

func TestIncomeTaxBase(t *testing.T) {
	p := config.Default2025()

	base := IncomeTaxBase(decimal.NewFromInt(3000), decimal.RequireFromString("253.41"), 1, p)
	assertDecimal(t, "2557.00", base)

	clamped := IncomeTaxBase(decimal.NewFromInt(300), decimal.NewFromInt(100), 2, p)
	assertDecimal(t, "0", clamped)

	negativeDependents := IncomeTaxBase(decimal.NewFromInt(1000), decimal.NewFromInt(75), -3, p)
	assertDecimal(t, "925", negativeDependents)
}

func TestDefaultTableCoversCeiling(t *testing.T) {
	p := config.Default2025()
	last := p.INSSBrackets[len(p.INSSBrackets)-1]
	assert.True(t, last.UpperBound.GreaterThanOrEqual(p.INSSCeiling))
	require.NoError(t, config.ValidateParameters(p))
}
