package reallocating

import "sort"

// Apportion distribui total entre os pesos pelo método dos maiores restos (Hamilton).
// Pesos negativos contam como zero. A soma do resultado é exatamente total quando
// algum peso é positivo; caso contrário todas as cotas são zero.
func Apportion(total int, weights []int) []int {
	shares := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return shares
	}

	var sum int64
	for _, w := range weights {
		if w > 0 {
			sum += int64(w)
		}
	}
	if sum == 0 {
		return shares
	}

	// piso e resto em aritmética inteira: w*total = piso*sum + resto
	remainders := make([]int64, len(weights))
	assigned := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		product := int64(w) * int64(total)
		shares[i] = int(product / sum)
		remainders[i] = product % sum
		assigned += shares[i]
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	shortfall := total - assigned
	for i := 0; i < shortfall; i++ {
		shares[order[i%len(order)]]++
	}

	return shares
}
