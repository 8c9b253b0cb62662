package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	YearMonthLayout = "2006-01"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseYearMonth valida um período no formato YYYY-MM e retorna o primeiro dia do mês em UTC
func ParseYearMonth(ym string) (time.Time, error) {
	t, err := time.Parse(YearMonthLayout, ym)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q: use o formato YYYY-MM", ym)
	}

	return t, nil
}

// YearMonthOf formata a data como período YYYY-MM
func YearMonthOf(t time.Time) string {
	return t.Format(YearMonthLayout)
}

// MonthBounds retorna o primeiro e o último dia do período
func MonthBounds(ym string) (time.Time, time.Time, error) {
	first, err := ParseYearMonth(ym)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return first, first.AddDate(0, 1, -1), nil
}

// MonthDays lista todos os dias do período no formato YYYY-MM-DD
func MonthDays(ym string) ([]string, error) {
	first, last, err := MonthBounds(ym)
	if err != nil {
		return nil, err
	}

	days := make([]string, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}

	return days, nil
}

// ShiftYearMonth desloca o período em n meses (negativo para trás)
func ShiftYearMonth(ym string, n int) (string, error) {
	first, err := ParseYearMonth(ym)
	if err != nil {
		return "", err
	}

	return YearMonthOf(first.AddDate(0, n, 0)), nil
}

// DateInMonth informa se a data YYYY-MM-DD pertence ao período
func DateInMonth(date, ym string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}

	return YearMonthOf(d) == ym
}

// AdjacentYearMonths retorna o mês anterior, o próprio período e o mês seguinte
func AdjacentYearMonths(ym string) ([]string, error) {
	first, err := ParseYearMonth(ym)
	if err != nil {
		return nil, err
	}

	return []string{
		YearMonthOf(first.AddDate(0, -1, 0)),
		ym,
		YearMonthOf(first.AddDate(0, 1, 0)),
	}, nil
}
