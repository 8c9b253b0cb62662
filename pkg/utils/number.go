package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundTo arredonda para a quantidade de casas decimais informada
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}

// Ratio retorna a razão entre dois inteiros, zero quando o denominador é zero
func Ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
