package ga4client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	calls   int
	onSleep func(calls int)
}

func (s *sleepRecorder) sleep(_ context.Context, _ time.Duration) error {
	s.calls++
	if s.onSleep != nil {
		s.onSleep(s.calls)
	}
	return nil
}

func TestRateLimiter_Wait(t *testing.T) {
	tests := []struct {
		name       string
		perMinute  int
		maxRetries int
		calls      int
		wantSleeps int
		wantCount  int
	}{
		{name: "Abaixo do teto não espera", perMinute: 3, maxRetries: 2, calls: 3, wantSleeps: 0, wantCount: 3},
		{name: "Acima do teto espera até o máximo e segue", perMinute: 2, maxRetries: 4, calls: 3, wantSleeps: 4, wantCount: 3},
		{name: "Sem tentativas segue direto", perMinute: 1, maxRetries: 0, calls: 2, wantSleeps: 0, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &sleepRecorder{}
			limiter := NewRateLimiter(tt.perMinute, 5*time.Second, tt.maxRetries)
			limiter.sleep = recorder.sleep

			for i := 0; i < tt.calls; i++ {
				require.NoError(t, limiter.Wait(context.Background(), "ga4"))
			}

			assert.Equal(t, tt.wantSleeps, recorder.calls)
			assert.Equal(t, tt.wantCount, limiter.Count("ga4"))
		})
	}
}

func TestRateLimiter_WaitReleasedDuringSleep(t *testing.T) {
	limiter := NewRateLimiter(1, 5*time.Second, 6)
	recorder := &sleepRecorder{
		onSleep: func(calls int) {
			if calls == 2 {
				limiter.counters.Delete("ga4")
			}
		},
	}
	limiter.sleep = recorder.sleep

	require.NoError(t, limiter.Wait(context.Background(), "ga4"))
	require.NoError(t, limiter.Wait(context.Background(), "ga4"))

	assert.Equal(t, 2, recorder.calls, "a janela liberou durante a segunda espera")
	assert.Equal(t, 1, limiter.Count("ga4"))
}

func TestRateLimiter_ProvidersAreIndependent(t *testing.T) {
	recorder := &sleepRecorder{}
	limiter := NewRateLimiter(1, time.Second, 3)
	limiter.sleep = recorder.sleep

	require.NoError(t, limiter.Wait(context.Background(), "ga4"))
	require.NoError(t, limiter.Wait(context.Background(), "gsc"))

	assert.Zero(t, recorder.calls)
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour, 3)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, limiter.Wait(ctx, "ga4"))

	cancel()
	assert.ErrorIs(t, limiter.Wait(ctx, "ga4"), context.Canceled)
}

func TestRateLimiter_WindowIsFixedFromFirstCall(t *testing.T) {
	limiter := NewRateLimiter(10, 5*time.Second, 0)

	require.NoError(t, limiter.Wait(context.Background(), "ga4"))
	opened := limiter.counters.Items()["ga4"].Expiration

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, limiter.Wait(context.Background(), "ga4"))

	assert.Equal(t, opened, limiter.counters.Items()["ga4"].Expiration, "chamadas seguintes não renovam a janela")
	assert.Equal(t, 2, limiter.Count("ga4"))
}
