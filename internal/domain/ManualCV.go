package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	ManualCountMin = 0
	ManualCountMax = 99
)

// ManualCount distingue "sem lançamento manual" de um valor explícito, inclusive zero.
// O valor zero de ManualCount é Unset.
type ManualCount struct {
	set   bool
	value int
}

func Unset() ManualCount {
	return ManualCount{}
}

func Override(n int) ManualCount {
	return ManualCount{set: true, value: n}
}

func (m ManualCount) IsSet() bool {
	return m.set
}

// Value retorna o valor lançado e se existe lançamento
func (m ManualCount) Value() (int, bool) {
	return m.value, m.set
}

// Validate garante que overrides fiquem no intervalo aceito
func (m ManualCount) Validate() error {
	if !m.set {
		return nil
	}

	if m.value < ManualCountMin || m.value > ManualCountMax {
		return fmt.Errorf("%w: %d fora do intervalo [%d,%d]", ErrInvalidManualCount, m.value, ManualCountMin, ManualCountMax)
	}

	return nil
}

func (m ManualCount) String() string {
	if !m.set {
		return "unset"
	}

	return strconv.Itoa(m.value)
}

func (m ManualCount) MarshalJSON() ([]byte, error) {
	if !m.set {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(m.value)), nil
}

// UnmarshalJSON aceita null, inteiro ou inteiro entre aspas; string vazia equivale a null
func (m *ManualCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = Unset()
		return nil
	}

	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
		if raw == "" {
			*m = Unset()
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidManualCount, string(data))
	}

	*m = Override(n)
	return nil
}

// ManualCVEntry é a linha persistida; apenas overrides são gravados
type ManualCVEntry struct {
	TenantID string `json:"tenant_id"`
	Date     string `json:"date"`
	RouteKey string `json:"route_key"`
	Count    int    `json:"count"`
}

// ManualCVMonth mapeia cada dia do mês (YYYY-MM-DD) ao lançamento da rota
type ManualCVMonth map[string]ManualCount

// HasOverrides indica se a rota é gerida manualmente no mês
func (m ManualCVMonth) HasOverrides() bool {
	for _, count := range m {
		if count.IsSet() {
			return true
		}
	}

	return false
}

// Sum soma apenas os dias com override
func (m ManualCVMonth) Sum() int {
	total := 0
	for _, count := range m {
		if n, ok := count.Value(); ok {
			total += n
		}
	}

	return total
}

type ManualCVItem struct {
	Date  string      `json:"date" validate:"required,datetime=2006-01-02"`
	Route string      `json:"route" validate:"required"`
	Count ManualCount `json:"count"`
}

type SaveManualCVRequest struct {
	Tenant string         `json:"tenant" validate:"required"`
	Month  string         `json:"month" validate:"required,datetime=2006-01"`
	Items  []ManualCVItem `json:"items" validate:"required,min=1,dive"`
}

type SaveManualCVResponse struct {
	Saved   int `json:"saved"`
	Deleted int `json:"deleted"`
}

type ManualCVMonthResponse struct {
	Items  map[string]map[string]ManualCount `json:"items"`
	Routes []*CVRoute                        `json:"routes"`
}
