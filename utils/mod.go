package utils

import "golang.org/x/exp/constraints"

// MinMax returns the smallest and largest element of a non-empty slice.
func MinMax[T constraints.Ordered](slice []T) (T, T) {
	if len(slice) == 0 {
		panic("MinMax on empty slice")
	}
	lo, hi := slice[0], slice[0]
	for _, v := range slice[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
