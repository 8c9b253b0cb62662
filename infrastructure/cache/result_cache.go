package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/internal/config"
	"github.com/vfg2006/cv-report-api/internal/domain"
	"github.com/vfg2006/cv-report-api/pkg/metrics"
)

//go:generate mockgen -source=result_cache.go -destination=mocks/mock_result_cache.go -package=mocks

// ResultCache memoriza resultados de reconciliação e realocação.
// Cada entrada registra as tags de que depende e as escritas invalidam por tag.
type ResultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any, tags []string)
	Invalidate(invalidation domain.CacheInvalidation) int
	Flush()
}

type resultCache struct {
	store *gocache.Cache

	mu    sync.Mutex
	index map[string]map[string]struct{} // tag -> chaves
}

func NewResultCache(cfg config.ResultCache) ResultCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = ttl * 2
	}

	return &resultCache{
		store: gocache.New(ttl, cleanup),
		index: map[string]map[string]struct{}{},
	}
}

func (c *resultCache) Get(key string) (any, bool) {
	value, found := c.store.Get(key)
	if found {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	return value, found
}

// Set grava com o TTL padrão; a última escrita prevalece
func (c *resultCache) Set(key string, value any, tags []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(key, value, gocache.DefaultExpiration)
	for _, tag := range tags {
		keys, ok := c.index[tag]
		if !ok {
			keys = map[string]struct{}{}
			c.index[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate remove todas as entradas associadas às tags do evento
func (c *resultCache) Invalidate(invalidation domain.CacheInvalidation) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, tag := range invalidation.Tags() {
		for key := range c.index[tag] {
			if _, found := c.store.Get(key); found {
				removed++
			}
			c.store.Delete(key)
			c.dropKey(key)
		}
		delete(c.index, tag)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": invalidation.TenantID,
		"periods":   invalidation.Periods,
		"reason":    invalidation.Reason,
		"removed":   removed,
	}).Debug("Cache de resultados invalidado")

	return removed
}

// dropKey tira a chave de todas as tags; chamado com mu travado
func (c *resultCache) dropKey(key string) {
	for tag, keys := range c.index {
		delete(keys, key)
		if len(keys) == 0 {
			delete(c.index, tag)
		}
	}
}

func (c *resultCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Flush()
	c.index = map[string]map[string]struct{}{}
}

// ResultTags retorna as tags de um resultado de tenant e período
func ResultTags(tenantID, ym string) []string {
	return []string{domain.TenantTag(tenantID), domain.TenantPeriodTag(tenantID, ym)}
}
