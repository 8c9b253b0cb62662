package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Dimensões e métricas usadas nos relatórios da Data API
const (
	DimensionDate              = "date"
	DimensionDateHourMinute    = "dateHourMinute"
	DimensionEventName         = "eventName"
	DimensionPagePath          = "pagePath"
	DimensionSourceMedium      = "sessionSourceMedium"
	DimensionDeviceCategory    = "deviceCategory"
	DimensionCountry           = "country"
	MetricEventCount           = "eventCount"
	MetricKeyEvents            = "keyEvents"
	MetricSessions             = "sessions"
	MetricTotalUsers           = "totalUsers"
	MetricScreenPageViews      = "screenPageViews"
	ReportDateLayout           = "20060102"
	ReportDateHourMinuteLayout = "200601021504"
)

// NotSet é o valor que o GA4 devolve quando a dimensão não foi coletada
const NotSet = "(not set)"

// ParseReportDate converte YYYYMMDD para YYYY-MM-DD
func ParseReportDate(value string) (string, error) {
	t, err := time.Parse(ReportDateLayout, value)
	if err != nil {
		return "", fmt.Errorf("data inválida no relatório: %q", value)
	}

	return t.Format(time.DateOnly), nil
}

// ParseReportMinute converte YYYYMMDDHHMM para YYYY-MM-DD HH:MM
func ParseReportMinute(value string) (string, error) {
	t, err := time.Parse(ReportDateHourMinuteLayout, value)
	if err != nil {
		return "", fmt.Errorf("minuto inválido no relatório: %q", value)
	}

	return t.Format("2006-01-02 15:04"), nil
}

// ParseMetric lê o valor inteiro de uma métrica; decimais são truncados
func ParseMetric(value string) int {
	if value == "" {
		return 0
	}

	if n, err := strconv.Atoi(value); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return int(f)
}
