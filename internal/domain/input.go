package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TerminationReason selects the settlement recipe applied on termination.
type TerminationReason string

const (
	ReasonWithoutCause    TerminationReason = "without_cause"
	ReasonResignation     TerminationReason = "resignation"
	ReasonMutualAgreement TerminationReason = "mutual_agreement"
	ReasonForCause        TerminationReason = "for_cause"
	ReasonContractExpiry  TerminationReason = "contract_expiry"
)

// Valid reports whether r is one of the five recognized reasons.
func (r TerminationReason) Valid() bool {
	switch r {
	case ReasonWithoutCause, ReasonResignation, ReasonMutualAgreement,
		ReasonForCause, ReasonContractExpiry:
		return true
	}
	return false
}

// SalaryInput is the input to the monthly-salary calculator.
type SalaryInput struct {
	GrossSalary       decimal.Decimal `json:"gross_salary" yaml:"gross_salary"`
	Dependents        int             `json:"dependents" yaml:"dependents"`
	DependentsUnder14 int             `json:"dependents_under_14" yaml:"dependents_under_14"`
	SimplifiedIRRF    bool            `json:"simplified_irrf" yaml:"simplified_irrf"`
	OtherDeductions   []LineItem      `json:"other_deductions,omitempty" yaml:"other_deductions,omitempty"`
}

// VacationInput is the input to the paid-leave calculator. SoldDays is the
// abono pecuniário portion of RequestedDays converted to cash.
type VacationInput struct {
	GrossSalary         decimal.Decimal `json:"gross_salary" yaml:"gross_salary"`
	Dependents          int             `json:"dependents" yaml:"dependents"`
	UnjustifiedAbsences int             `json:"unjustified_absences" yaml:"unjustified_absences"`
	RequestedDays       int             `json:"requested_days" yaml:"requested_days"`
	SoldDays            int             `json:"sold_days" yaml:"sold_days"`
	SimplifiedIRRF      bool            `json:"simplified_irrf" yaml:"simplified_irrf"`
}

// ThirteenthInput is the input to the year-end-bonus calculator. With Split
// set, FirstInstallmentPaid overrides the statutory gross/2 advance when
// positive.
type ThirteenthInput struct {
	GrossSalary          decimal.Decimal `json:"gross_salary" yaml:"gross_salary"`
	Dependents           int             `json:"dependents" yaml:"dependents"`
	MonthsWorked         int             `json:"months_worked" yaml:"months_worked"`
	Split                bool            `json:"split" yaml:"split"`
	FirstInstallmentPaid decimal.Decimal `json:"first_installment_paid" yaml:"first_installment_paid"`
}

// TerminationInput is the input to the contract-termination calculator.
type TerminationInput struct {
	GrossSalary        decimal.Decimal   `json:"gross_salary" yaml:"gross_salary"`
	Dependents         int               `json:"dependents" yaml:"dependents"`
	AdmissionDate      time.Time         `json:"admission_date" yaml:"admission_date"`
	TerminationDate    time.Time         `json:"termination_date" yaml:"termination_date"`
	Reason             TerminationReason `json:"reason" yaml:"reason"`
	FGTSBalance        decimal.Decimal   `json:"fgts_balance" yaml:"fgts_balance"`
	NoticeWorked       bool              `json:"notice_worked" yaml:"notice_worked"`
	UnusedVacationDays int               `json:"unused_vacation_days" yaml:"unused_vacation_days"`
}
