package utils

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// CopyNew returns a copy of s backed by a new array.
// A nil s returns an empty, non-nil, slice.
func CopyNew[V any](s []V) (c []V) {
	c = make([]V, len(s))
	copy(c, s)
	return
}

// TrimTrailing returns s resliced to drop its trailing elements equal to
// zero, keeping at least min(len(s), 1) elements.
func TrimTrailing[V comparable](s []V) []V {
	var zero V
	n := len(s)
	for n > 1 && s[n-1] == zero {
		n--
	}
	return s[:n]
}
