package measure

import "sort"

// DistinctDistances sorts a copy of values and clusters neighbours that are
// ApproxEqual, returning one representative (the cluster mean) per cluster
// in ascending order. The cluster count feeds the open/closed parity rule,
// so clustering must preserve every genuinely distinct value.
func DistinctDistances(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var clusters []float64
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && ApproxEqual(sorted[i], sorted[i-1]) {
			continue
		}
		clusters = append(clusters, mean(sorted[start:i]))
		start = i
	}
	return clusters
}

// Span returns the minimum and maximum of values. ok is false for an empty
// slice.
func Span(values []float64) (min, max float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}

// SortedSum adds values in ascending order. Summation order is then a
// function of the values alone, so totals such as cut length come out
// bit-identical no matter how the caller's faces were ordered.
func SortedSum(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return sum
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
