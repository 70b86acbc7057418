package chainmap

// StringHash is the polynomial rolling hash used by the tables:
// h = h*31 + c over the code points of s, starting at 0.
// Overflow wraps in int32.
func StringHash(s string) int32 {
	var h int32
	for _, c := range s {
		h = h*31 + c
	}

	return h
}

func hashKey[K ~string](key K) int32 {
	return StringHash(string(key))
}

// Reduces a hash code to a bucket index in [0, capacity).
// abs is taken in int64, so math.MinInt32 doesn't overflow.
func bucketIndex(h int32, capacity int) int {
	v := int64(h)
	if v < 0 {
		v = -v
	}

	return int(v % int64(capacity))
}
