// Package utils implements various helper functions shared by the polymath packages.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) (r T) {
	if a >= b {
		return a
	}
	return b
}

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) (r T) {
	if a <= b {
		return a
	}
	return b
}

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[T comparable](s []T) bool {
	m := make(map[T]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}
