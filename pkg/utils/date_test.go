package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthDays(t *testing.T) {
	tests := []struct {
		name    string
		ym      string
		want    int
		first   string
		last    string
		wantErr bool
	}{
		{name: "Março tem 31 dias", ym: "2025-03", want: 31, first: "2025-03-01", last: "2025-03-31"},
		{name: "Fevereiro bissexto", ym: "2024-02", want: 29, first: "2024-02-01", last: "2024-02-29"},
		{name: "Fevereiro comum", ym: "2025-02", want: 28, first: "2025-02-01", last: "2025-02-28"},
		{name: "Formato inválido", ym: "03-2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := MonthDays(tt.ym)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, days, tt.want)
			assert.Equal(t, tt.first, days[0])
			assert.Equal(t, tt.last, days[len(days)-1])
		})
	}
}

func TestShiftYearMonth(t *testing.T) {
	prev, err := ShiftYearMonth("2025-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-12", prev)

	next, err := ShiftYearMonth("2025-12", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-01", next)
}

func TestDateInMonth(t *testing.T) {
	assert.True(t, DateInMonth("2025-03-15", "2025-03"))
	assert.False(t, DateInMonth("2025-04-01", "2025-03"))
	assert.False(t, DateInMonth("2025-03-32", "2025-03"))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(5, 0))
	assert.Equal(t, 0.5, Ratio(5, 10))
	assert.Equal(t, 33.33, RoundTo(100.0/3.0, 2))
}

func TestAdjacentYearMonths(t *testing.T) {
	months, err := AdjacentYearMonths("2025-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12", "2025-01", "2025-02"}, months)

	_, err = AdjacentYearMonths("2025/01")
	assert.Error(t, err)
}
