package ga4client

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cv-report-api/pkg/metrics"
)

const rateWindow = time.Minute

// RateLimiter é um limitador cooperativo por provedor: conta requisições numa janela fixa
// de um minuto, aberta pela primeira chamada e não renovada pelas seguintes, e no teto
// espera em passos fixos até o máximo de tentativas.
// Esgotadas as tentativas a chamada segue mesmo acima da cota.
type RateLimiter struct {
	counters   *gocache.Cache
	perMinute  int
	step       time.Duration
	maxRetries int
	sleep      func(ctx context.Context, d time.Duration) error

	mu sync.Mutex
}

func NewRateLimiter(perMinute int, step time.Duration, maxRetries int) *RateLimiter {
	return &RateLimiter{
		counters:   gocache.New(rateWindow, 2*rateWindow),
		perMinute:  perMinute,
		step:       step,
		maxRetries: maxRetries,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Wait reserva uma vaga para o provedor. Só retorna erro se o contexto for cancelado.
func (l *RateLimiter) Wait(ctx context.Context, provider string) error {
	for attempt := 0; ; attempt++ {
		if l.tryAcquire(provider) {
			return nil
		}

		if attempt >= l.maxRetries {
			logrus.WithFields(logrus.Fields{
				"provider":    provider,
				"per_minute":  l.perMinute,
				"max_retries": l.maxRetries,
			}).Warn("Limite de requisições atingido, seguindo acima da cota")
			l.increment(provider)
			return nil
		}

		metrics.FeedThrottleWaits.WithLabelValues(provider).Inc()
		logrus.WithFields(logrus.Fields{
			"provider": provider,
			"attempt":  attempt + 1,
			"sleep":    l.step.String(),
		}).Debug("Limite de requisições atingido, aguardando")

		if err := l.sleep(ctx, l.step); err != nil {
			return err
		}
	}
}

func (l *RateLimiter) tryAcquire(provider string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count(provider) >= l.perMinute {
		return false
	}

	l.incrementLocked(provider)
	return true
}

func (l *RateLimiter) increment(provider string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.incrementLocked(provider)
}

func (l *RateLimiter) incrementLocked(provider string) {
	if err := l.counters.Add(provider, 1, rateWindow); err != nil {
		_ = l.counters.Increment(provider, 1)
	}
}

func (l *RateLimiter) count(provider string) int {
	value, found := l.counters.Get(provider)
	if !found {
		return 0
	}

	n, _ := value.(int)
	return n
}

// Count retorna as requisições contadas na janela atual
func (l *RateLimiter) Count(provider string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.count(provider)
}
