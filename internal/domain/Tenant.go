package domain

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

// Tenant representa um site cliente com propriedade GA4 própria
type Tenant struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	GA4PropertyID        string       `json:"ga4_property_id"`
	Status               TenantStatus `json:"status"`
	OnlyConfiguredEvents bool         `json:"only_configured_events"`
	PhoneEventName       *string      `json:"phone_event_name"`
}

// PhoneEvent retorna o evento de telefone do tenant ou o padrão configurado
func (t *Tenant) PhoneEvent(fallback string) string {
	if t == nil || t.PhoneEventName == nil || *t.PhoneEventName == "" {
		return fallback
	}

	return *t.PhoneEventName
}

type TenantSettings struct {
	OnlyConfiguredEvents *bool
	PhoneEventName       *string
}

func (s TenantSettings) IsEmpty() bool {
	return s.OnlyConfiguredEvents == nil && s.PhoneEventName == nil
}
