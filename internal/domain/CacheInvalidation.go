package domain

import "fmt"

// CacheInvalidation é emitido pelas escritas que alteram a base de cálculo de um tenant.
// Sem períodos, invalida todos os resultados do tenant.
type CacheInvalidation struct {
	TenantID string
	Periods  []string
	Reason   string
}

func TenantTag(tenantID string) string {
	return fmt.Sprintf("tenant:%s", tenantID)
}

func TenantPeriodTag(tenantID, ym string) string {
	return fmt.Sprintf("tenant:%s:period:%s", tenantID, ym)
}

// Tags retorna as tags a invalidar
func (c CacheInvalidation) Tags() []string {
	if len(c.Periods) == 0 {
		return []string{TenantTag(c.TenantID)}
	}

	tags := make([]string, 0, len(c.Periods))
	for _, period := range c.Periods {
		tags = append(tags, TenantPeriodTag(c.TenantID, period))
	}

	return tags
}

func EffectiveCVCacheKey(tenantID, ym string) string {
	return fmt.Sprintf("effective:%s:%s", tenantID, ym)
}

func AllocationCacheKey(tenantID, ym string, dimension Dimension) string {
	return fmt.Sprintf("allocation:%s:%s:%s", tenantID, ym, dimension)
}

func AnalysisCacheKey(tenantID, ym string) string {
	return fmt.Sprintf("analysis:%s:%s", tenantID, ym)
}
