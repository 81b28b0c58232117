package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

// WITHHOLDING CONVENTIONS:
//
// 1. INSS: progressive bracket-delta walk over the contribution table,
//    capped at the ceiling. Each bracket taxes only the slice of the base
//    that falls inside it, so withholding is continuous at every boundary.
//
// 2. IRRF: single-bracket marginal formula. The table embeds a deduction
//    constant per bracket so that rate*upperBound - deduction agrees
//    between adjacent brackets at the boundary.
//
// 3. Non-positive bases withhold zero by statute; that is the documented
//    convention, not error suppression. Business-level validation happens
//    at the calculator boundaries.

// SocialSecurityWithholding computes the progressive INSS contribution on
// base, capped at the table ceiling, rounded to cents.
func SocialSecurityWithholding(base decimal.Decimal, p *domain.LegalParameters) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	taxable := decimal.Min(base, p.INSSCeiling)
	total := decimal.Zero
	previous := decimal.Zero

	for _, bracket := range p.INSSBrackets {
		upper := decimal.Min(bracket.UpperBound, p.INSSCeiling)
		slice := decimal.Min(taxable, upper).Sub(previous)
		if slice.GreaterThan(decimal.Zero) {
			total = total.Add(slice.Mul(bracket.Rate))
		}
		if taxable.LessThanOrEqual(upper) {
			break
		}
		previous = upper
	}

	return total.Round(2)
}

// IncomeTaxWithholding computes the IRRF due on base after the
// per-dependent deduction. The last table bracket is the unbounded
// fallback.
func IncomeTaxWithholding(base decimal.Decimal, dependents int, p *domain.LegalParameters) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) || dependents < 0 {
		return decimal.Zero
	}

	adjusted := base.Sub(p.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents))))
	return incomeTaxOnAdjustedBase(adjusted, p)
}

// IncomeTaxWithholdingSimplified computes IRRF under the simplified
// deduction mode: a flat fraction of the base, capped at a fixed ceiling,
// substitutes the per-dependent deduction. Mutually exclusive with
// IncomeTaxWithholding; the caller selects the mode.
func IncomeTaxWithholdingSimplified(base decimal.Decimal, p *domain.LegalParameters) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	discount := decimal.Min(base.Mul(p.SimplifiedDeduction.Rate), p.SimplifiedDeduction.Ceiling)
	return incomeTaxOnAdjustedBase(base.Sub(discount), p)
}

func incomeTaxOnAdjustedBase(adjusted decimal.Decimal, p *domain.LegalParameters) decimal.Decimal {
	if adjusted.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	for i, bracket := range p.IRRFBrackets {
		if i == len(p.IRRFBrackets)-1 || adjusted.LessThanOrEqual(bracket.UpperBound) {
			tax := adjusted.Mul(bracket.Rate).Sub(bracket.Deduction)
			if tax.LessThan(decimal.Zero) {
				return decimal.Zero
			}
			return tax.Round(2)
		}
	}
	return decimal.Zero
}

// IncomeTaxBase derives the IRRF base from a gross amount: gross minus the
// INSS already withheld minus the per-dependent deduction, floored at zero.
func IncomeTaxBase(gross, socialSecurityWithheld decimal.Decimal, dependents int, p *domain.LegalParameters) decimal.Decimal {
	if dependents < 0 {
		dependents = 0
	}
	base := gross.
		Sub(socialSecurityWithheld).
		Sub(p.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents))))
	if base.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return base
}
