package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single labeled amount in a settlement. Amounts are always
// non-negative; the sign of a line is given by which list it sits in.
type LineItem struct {
	Label  string          `json:"label" yaml:"label"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Detail string          `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Totals aggregates a result. Net may be negative when deductions exceed
// earnings; that is surfaced, never clamped.
type Totals struct {
	Gross      decimal.Decimal `json:"gross" yaml:"gross"`
	Deductions decimal.Decimal `json:"deductions" yaml:"deductions"`
	Net        decimal.Decimal `json:"net" yaml:"net"`
}

// Metadata carries calculator-specific informational fields. Only the
// fields relevant to the producing calculator are set.
type Metadata struct {
	EntitledVacationDays  int              `json:"entitled_vacation_days,omitempty" yaml:"entitled_vacation_days,omitempty"`
	TakenVacationDays     int              `json:"taken_vacation_days,omitempty" yaml:"taken_vacation_days,omitempty"`
	SoldVacationDays      int              `json:"sold_vacation_days,omitempty" yaml:"sold_vacation_days,omitempty"`
	ThirteenthMonths      int              `json:"thirteenth_months,omitempty" yaml:"thirteenth_months,omitempty"`
	FirstInstallment      *decimal.Decimal `json:"first_installment,omitempty" yaml:"first_installment,omitempty"`
	SecondInstallment     *decimal.Decimal `json:"second_installment,omitempty" yaml:"second_installment,omitempty"`
	YearsOfService        int              `json:"years_of_service,omitempty" yaml:"years_of_service,omitempty"`
	NoticeDays            int              `json:"notice_days,omitempty" yaml:"notice_days,omitempty"`
	ProjectedEndDate      *time.Time       `json:"projected_end_date,omitempty" yaml:"projected_end_date,omitempty"`
	VacationMonths        int              `json:"vacation_months,omitempty" yaml:"vacation_months,omitempty"`
	UnemploymentInsurance bool             `json:"unemployment_insurance,omitempty" yaml:"unemployment_insurance,omitempty"`
	FGTSMonthDeposit      *decimal.Decimal `json:"fgts_month_deposit,omitempty" yaml:"fgts_month_deposit,omitempty"`
}

// CalculationResult is the structured outcome of one calculation. Earnings
// and deductions keep insertion order; each invocation produces a fresh
// value owned by the caller.
type CalculationResult struct {
	Earnings   []LineItem `json:"earnings" yaml:"earnings"`
	Deductions []LineItem `json:"deductions" yaml:"deductions"`
	Totals     Totals     `json:"totals" yaml:"totals"`
	Metadata   Metadata   `json:"metadata" yaml:"metadata"`
}

// AddEarning appends an earnings line.
func (r *CalculationResult) AddEarning(label string, amount decimal.Decimal, detail string) {
	r.Earnings = append(r.Earnings, LineItem{Label: label, Amount: amount, Detail: detail})
}

// AddDeduction appends a deduction line.
func (r *CalculationResult) AddDeduction(label string, amount decimal.Decimal, detail string) {
	r.Deductions = append(r.Deductions, LineItem{Label: label, Amount: amount, Detail: detail})
}

// Earning returns the earnings line with the given label.
func (r *CalculationResult) Earning(label string) (LineItem, bool) {
	for _, li := range r.Earnings {
		if li.Label == label {
			return li, true
		}
	}
	return LineItem{}, false
}

// Deduction returns the deduction line with the given label.
func (r *CalculationResult) Deduction(label string) (LineItem, bool) {
	for _, li := range r.Deductions {
		if li.Label == label {
			return li, true
		}
	}
	return LineItem{}, false
}

// Finalize fills Totals from the accumulated lines.
func (r *CalculationResult) Finalize() {
	gross := decimal.Zero
	for _, li := range r.Earnings {
		gross = gross.Add(li.Amount)
	}
	deductions := decimal.Zero
	for _, li := range r.Deductions {
		deductions = deductions.Add(li.Amount)
	}
	r.Totals = Totals{
		Gross:      gross,
		Deductions: deductions,
		Net:        gross.Sub(deductions),
	}
}
