// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// InBounds reports whether 0 <= v < limit.
func InBounds(v, limit int) bool {
	return v >= 0 && v < limit
}
