package domain

// MaxCVRoutes limita a quantidade de eventos de conversão por tenant
const MaxCVRoutes = 10

// CVRoute é um evento do GA4 que conta como conversão para o tenant
type CVRoute struct {
	TenantID  string `json:"tenant_id"`
	RouteKey  string `json:"route_key"`
	Label     string `json:"label"`
	Enabled   bool   `json:"enabled"`
	SortOrder int    `json:"sort_order"`
}

type CVRouteInput struct {
	RouteKey  string `json:"route_key" validate:"required,max=120"`
	Label     string `json:"label" validate:"max=200"`
	SortOrder *int   `json:"sort_order,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

type SaveCVRoutesRequest struct {
	Tenant               string         `json:"tenant" validate:"required"`
	Routes               []CVRouteInput `json:"routes" validate:"max=10,dive"`
	OnlyConfiguredEvents *bool          `json:"onlyConfiguredEvents,omitempty"`
	PhoneEventName       *string        `json:"phoneEventName,omitempty"`
}

type SaveCVRoutesResponse struct {
	Updated int `json:"updated"`
}

type CVRoutesResponse struct {
	Routes               []*CVRoute `json:"routes"`
	OnlyConfiguredEvents bool       `json:"onlyConfiguredEvents"`
	PhoneEventName       string     `json:"phoneEventName"`
}

// EnabledRoutes filtra as rotas habilitadas mantendo a ordem
func EnabledRoutes(routes []*CVRoute) []*CVRoute {
	enabled := make([]*CVRoute, 0, len(routes))
	for _, route := range routes {
		if route != nil && route.Enabled {
			enabled = append(enabled, route)
		}
	}

	return enabled
}

func RouteKeys(routes []*CVRoute) []string {
	keys := make([]string, 0, len(routes))
	for _, route := range routes {
		keys = append(keys, route.RouteKey)
	}

	return keys
}

// CVEventNames lista os eventos pedidos ao feed: rotas habilitadas e o evento de telefone
func CVEventNames(routes []*CVRoute, phoneEvent string) []string {
	seen := map[string]bool{}
	names := make([]string, 0, len(routes)+1)

	for _, route := range EnabledRoutes(routes) {
		if !seen[route.RouteKey] {
			seen[route.RouteKey] = true
			names = append(names, route.RouteKey)
		}
	}

	if phoneEvent != "" && !seen[phoneEvent] {
		names = append(names, phoneEvent)
	}

	return names
}
