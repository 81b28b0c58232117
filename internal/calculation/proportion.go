package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

var thirtyDays = decimal.NewFromInt(30)

// MonthsBetween counts the whole calendar months elapsed from start to end,
// plus one more month when the final partial month has at least the
// threshold number of days remaining (statutorily 15). Dates carry no
// time-of-day; the end date counts as fully elapsed. Returns 0 when start
// is not before end.
func MonthsBetween(start, end time.Time, p *domain.LegalParameters) int {
	start = civil(start)
	end = civil(end)
	if !start.Before(end) {
		return 0
	}

	months := 0
	for !start.AddDate(0, months+1, 0).After(end) {
		months++
	}

	remaining := daysBetween(start.AddDate(0, months, 0), end)
	if remaining >= p.MonthFractionThresholdDays {
		months++
	}
	return months
}

// VacationEntitlementDays returns the entitled vacation days for the given
// unjustified-absence count: the first table row whose MaxAbsences covers
// it, with the last row acting as the unbounded fallback.
func VacationEntitlementDays(unjustifiedAbsences int, p *domain.LegalParameters) int {
	if unjustifiedAbsences < 0 {
		unjustifiedAbsences = 0
	}
	for i, row := range p.VacationEntitlement {
		if i == len(p.VacationEntitlement)-1 || unjustifiedAbsences <= row.MaxAbsences {
			return row.EntitledDays
		}
	}
	return 0
}

// NoticePeriodDays returns the aviso prévio length for the given full years
// of service, capped at the statutory maximum.
func NoticePeriodDays(yearsOfService int, p *domain.LegalParameters) int {
	if yearsOfService < 0 {
		yearsOfService = 0
	}
	days := p.Notice.BaseDays + yearsOfService*p.Notice.ExtraDaysPerYear
	if days > p.Notice.MaxTotalDays {
		days = p.Notice.MaxTotalDays
	}
	return days
}

// DailyRate is the statutory daily value of a monthly salary under the
// 30-day-month convention. The balance-of-salary line in a termination is
// the one place actual calendar days are used instead.
func DailyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Div(thirtyDays)
}

// civil strips any time-of-day component, keeping year/month/day in UTC.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// daysInMonth returns the calendar length of t's month.
func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
