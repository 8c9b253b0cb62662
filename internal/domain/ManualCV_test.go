package domain

import (
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestManualCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ManualCount
		wantErr bool
	}{
		{name: "null é unset", input: `null`, want: Unset()},
		{name: "zero explícito é override", input: `0`, want: Override(0)},
		{name: "inteiro", input: `7`, want: Override(7)},
		{name: "inteiro entre aspas", input: `"3"`, want: Override(3)},
		{name: "string vazia é unset", input: `""`, want: Unset()},
		{name: "texto inválido", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ManualCount
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManualCount_MarshalJSON(t *testing.T) {
	items := map[string]ManualCount{
		"2025-03-01": Override(0),
		"2025-03-02": Unset(),
	}

	data, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2025-03-01":0,"2025-03-02":null}`, string(data))
}

func TestManualCount_Validate(t *testing.T) {
	assert.NoError(t, Unset().Validate())
	assert.NoError(t, Override(0).Validate())
	assert.NoError(t, Override(99).Validate())
	assert.True(t, errors.Is(Override(100).Validate(), ErrInvalidManualCount))
	assert.True(t, errors.Is(Override(-1).Validate(), ErrInvalidManualCount))
}

func TestManualCVMonth(t *testing.T) {
	month := ManualCVMonth{
		"2025-03-01": Override(3),
		"2025-03-02": Unset(),
		"2025-03-15": Override(2),
	}

	assert.True(t, month.HasOverrides())
	assert.Equal(t, 5, month.Sum())

	zeroOnly := ManualCVMonth{"2025-03-01": Override(0)}
	assert.True(t, zeroOnly.HasOverrides(), "zero explícito também marca a rota como manual")
	assert.Equal(t, 0, zeroOnly.Sum())

	assert.False(t, ManualCVMonth{"2025-03-01": Unset()}.HasOverrides())
}
