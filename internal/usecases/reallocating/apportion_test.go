package reallocating

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApportion(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []int
		want    []int
	}{
		{
			name:    "Maior resto recebe a sobra",
			total:   10,
			weights: []int{34, 33, 33},
			want:    []int{4, 3, 3},
		},
		{
			name:    "Divisão exata",
			total:   6,
			weights: []int{1, 2, 3},
			want:    []int{1, 2, 3},
		},
		{
			name:    "Empate desfeito pela ordem de entrada",
			total:   2,
			weights: []int{1, 1, 1},
			want:    []int{1, 1, 0},
		},
		{
			name:    "Total menor que a quantidade de valores",
			total:   1,
			weights: []int{5, 3, 2},
			want:    []int{1, 0, 0},
		},
		{
			name:    "Peso zero nunca recebe sobra antes dos positivos",
			total:   3,
			weights: []int{0, 1, 1},
			want:    []int{0, 2, 1},
		},
		{
			name:    "Total zero",
			total:   0,
			weights: []int{3, 4},
			want:    []int{0, 0},
		},
		{
			name:    "Todos os pesos zerados",
			total:   5,
			weights: []int{0, 0},
			want:    []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apportion(tt.total, tt.weights))
		})
	}
}

func TestApportion_SumAlwaysMatchesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		n := rng.Intn(12) + 1
		weights := make([]int, n)
		positive := false
		for j := range weights {
			weights[j] = rng.Intn(500)
			if weights[j] > 0 {
				positive = true
			}
		}
		if !positive {
			weights[0] = 1
		}

		total := rng.Intn(1000)
		if i%4 == 0 {
			total = rng.Intn(n + 1)
		}

		shares := Apportion(total, weights)
		require.Len(t, shares, n)

		sum := 0
		for j, share := range shares {
			require.GreaterOrEqual(t, share, 0)
			if weights[j] == 0 {
				require.Zero(t, share, "peso zero não deve receber cota: weights=%v total=%d", weights, total)
			}
			sum += share
		}
		require.Equal(t, total, sum, "weights=%v", weights)
	}
}
