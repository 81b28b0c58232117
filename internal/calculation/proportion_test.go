package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/trabalhista/calculadora/internal/config"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	p := config.Default2025()

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"same date", date(2025, time.January, 1), date(2025, time.January, 1), 0},
		{"start after end", date(2025, time.March, 1), date(2025, time.January, 1), 0},
		{"fifteen days round up", date(2025, time.January, 1), date(2025, time.January, 16), 1},
		{"fourteen days round down", date(2025, time.January, 1), date(2025, time.January, 15), 0},
		{"one exact month", date(2025, time.January, 10), date(2025, time.February, 10), 1},
		{"one month plus fourteen days", date(2025, time.January, 10), date(2025, time.February, 24), 1},
		{"one month plus fifteen days", date(2025, time.January, 10), date(2025, time.February, 25), 2},
		{"six exact years", date(2019, time.August, 21), date(2025, time.August, 21), 72},
		{"year start to october eighth", date(2025, time.January, 1), date(2025, time.October, 8), 9},
		{"end of january into february", date(2025, time.January, 31), date(2025, time.February, 28), 1},
		{"time of day is ignored", time.Date(2025, time.January, 1, 23, 0, 0, 0, time.UTC), date(2025, time.January, 16), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsBetween(tt.start, tt.end, p))
			// Pure function: a second call agrees with the first.
			assert.Equal(t, tt.expected, MonthsBetween(tt.start, tt.end, p))
		})
	}
}

func TestVacationEntitlementDays(t *testing.T) {
	p := config.Default2025()

	tests := []struct {
		absences int
		expected int
	}{
		{0, 30}, {5, 30},
		{6, 24}, {14, 24},
		{15, 18}, {23, 18},
		{24, 12}, {32, 12},
		{33, 0}, {100, 0},
		{-1, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, VacationEntitlementDays(tt.absences, p),
			"absences=%d", tt.absences)
	}
}

func TestNoticePeriodDays(t *testing.T) {
	p := config.Default2025()

	tests := []struct {
		years    int
		expected int
	}{
		{0, 30},
		{1, 33},
		{6, 48},
		{20, 90},
		{25, 90},
		{-1, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NoticePeriodDays(tt.years, p), "years=%d", tt.years)
	}
}

func TestDailyRate(t *testing.T) {
	assertDecimal(t, "100", DailyRate(decimal.NewFromInt(3000)).Round(2))
	assertDecimal(t, "106.67", DailyRate(decimal.NewFromInt(3200)).Round(2))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(date(2025, time.August, 21)))
	assert.Equal(t, 30, daysInMonth(date(2025, time.June, 1)))
	assert.Equal(t, 28, daysInMonth(date(2025, time.February, 10)))
	assert.Equal(t, 29, daysInMonth(date(2024, time.February, 10)))
}
