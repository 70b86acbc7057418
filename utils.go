package chainmap

import "math"

// Returns the smallest capacity that holds n entries at the given load factor
// without growing. Useful together with WithCapacity.
func CapacityFor(n int, loadFactor float64) int {
	if n <= 0 || !(loadFactor > 0 && loadFactor <= 1) {
		return 1
	}

	capacity := int(math.Ceil(float64(n) / loadFactor))
	// Guard against rounding in the division.
	for float64(n)/float64(capacity) > loadFactor {
		capacity++
	}

	return capacity
}
