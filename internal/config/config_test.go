package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "Configuração válida",
			cfg: Config{
				GA4:       GA4{RateLimitPerMinute: 50, RateLimitMaxRetries: 6, RateLimitSleep: 5 * time.Second},
				CVRefresh: CVRefresh{ChunkSize: 5, MonthLookBack: 1},
			},
		},
		{
			name:    "Chunk zerado deve falhar",
			cfg:     Config{GA4: GA4{RateLimitPerMinute: 50}},
			wantErr: true,
		},
		{
			name:    "Teto de requisições zerado deve falhar",
			cfg:     Config{CVRefresh: CVRefresh{ChunkSize: 5}},
			wantErr: true,
		},
		{
			name: "Valores negativos são normalizados",
			cfg: Config{
				GA4:       GA4{RateLimitPerMinute: 10, RateLimitMaxRetries: -1},
				CVRefresh: CVRefresh{ChunkSize: 1, MonthLookBack: -3},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 0, cfg.GA4.RateLimitMaxRetries)
				assert.Equal(t, 0, cfg.CVRefresh.MonthLookBack)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
