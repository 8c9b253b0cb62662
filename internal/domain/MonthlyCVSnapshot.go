package domain

import (
	"time"
)

// MonthlyCVSnapshot representa o resultado mensal de CV gravado pela cadeia de recálculo
type MonthlyCVSnapshot struct {
	ID        int64              `json:"id"`
	TenantID  string             `json:"tenant_id"`
	Period    string             `json:"period"` // Período no formato YYYY-MM
	Source    CVSource           `json:"source"`
	Total     int                `json:"total"`
	Result    *EffectiveCVResult `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// AvailablePeriods representa os períodos com snapshots gravados
type AvailablePeriods struct {
	Periods []string `json:"periods"`
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
