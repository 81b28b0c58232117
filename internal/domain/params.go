package domain

import (
	"github.com/shopspring/decimal"
)

// LegalParameters contains the legal/fiscal data for one fiscal year.
// It is loaded from a YAML table (or built in via config.Default2025) and
// treated as immutable for the lifetime of every calculation that uses it.
type LegalParameters struct {
	Metadata            ParametersMetadata    `yaml:"metadata" json:"metadata"`
	MinimumWage         decimal.Decimal       `yaml:"minimum_wage" json:"minimum_wage"`
	INSSCeiling         decimal.Decimal       `yaml:"inss_ceiling" json:"inss_ceiling"`
	INSSBrackets        []ContributionBracket `yaml:"inss_brackets" json:"inss_brackets"`
	IRRFBrackets        []IncomeTaxBracket    `yaml:"irrf_brackets" json:"irrf_brackets"`
	DependentDeduction  decimal.Decimal       `yaml:"dependent_deduction" json:"dependent_deduction"`
	SimplifiedDeduction SimplifiedDeduction   `yaml:"simplified_deduction" json:"simplified_deduction"`
	FamilyAllowance     FamilyAllowanceRules  `yaml:"family_allowance" json:"family_allowance"`
	VacationEntitlement []VacationBracket     `yaml:"vacation_entitlement" json:"vacation_entitlement"`
	FGTS                FGTSRules             `yaml:"fgts" json:"fgts"`
	Notice              NoticeRules           `yaml:"notice" json:"notice"`
	ConstitutionalThird decimal.Decimal       `yaml:"constitutional_third" json:"constitutional_third"`
	// Minimum remaining days in a partial month for it to count as a
	// full month of proportionality ("avo"). Statutorily 15.
	MonthFractionThresholdDays int `yaml:"month_fraction_threshold_days" json:"month_fraction_threshold_days"`
}

// ParametersMetadata identifies which fiscal table is loaded.
type ParametersMetadata struct {
	FiscalYear  int    `yaml:"fiscal_year" json:"fiscal_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// ContributionBracket is one progressive INSS bracket. Brackets are ordered
// ascending by UpperBound, contiguous, and together cover [0, INSSCeiling].
type ContributionBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// IncomeTaxBracket is one IRRF bracket of the marginal-with-deduction table.
// The last bracket is unbounded; its UpperBound is ignored.
type IncomeTaxBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction  decimal.Decimal `yaml:"deduction" json:"deduction"`
}

// SimplifiedDeduction is the optional flat-deduction IRRF mode: Rate of the
// base, capped at Ceiling, substituting the per-dependent deduction.
type SimplifiedDeduction struct {
	Rate    decimal.Decimal `yaml:"rate" json:"rate"`
	Ceiling decimal.Decimal `yaml:"ceiling" json:"ceiling"`
}

// FamilyAllowanceRules parameterize the salário-família quota.
type FamilyAllowanceRules struct {
	Quota              decimal.Decimal `yaml:"quota" json:"quota"`
	EligibilityCeiling decimal.Decimal `yaml:"eligibility_ceiling" json:"eligibility_ceiling"`
}

// VacationBracket maps an unjustified-absence count to entitled vacation
// days (CLT art. 130). Rows ascend by MaxAbsences; the last row is the
// unbounded fallback.
type VacationBracket struct {
	MaxAbsences  int `yaml:"max_absences" json:"max_absences"`
	EntitledDays int `yaml:"entitled_days" json:"entitled_days"`
}

// FGTSRules holds the severance-fund deposit and penalty rates.
type FGTSRules struct {
	DepositRate        decimal.Decimal `yaml:"deposit_rate" json:"deposit_rate"`
	PenaltyNoCauseRate decimal.Decimal `yaml:"penalty_no_cause_rate" json:"penalty_no_cause_rate"`
	PenaltyMutualRate  decimal.Decimal `yaml:"penalty_mutual_rate" json:"penalty_mutual_rate"`
}

// NoticeRules parameterize the aviso prévio: BaseDays plus ExtraDaysPerYear
// for each full year of service, capped at MaxTotalDays.
type NoticeRules struct {
	BaseDays         int `yaml:"base_days" json:"base_days"`
	ExtraDaysPerYear int `yaml:"extra_days_per_year" json:"extra_days_per_year"`
	MaxTotalDays     int `yaml:"max_total_days" json:"max_total_days"`
}
