package chainmap

// Set is a hash set of unique keys sharing the chained table of Map,
// without storing any payload.
// The zero value is an empty set ready to use with the default settings.
// Set is not safe for concurrent use.
type Set[K ~string] struct {
	table[K, struct{}]
}

func NewSet[K ~string](opts ...Option) (*Set[K], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var s Set[K]
	s.init(c)

	return &s, nil
}

// Puts a key in the set. Adding a present key is a no-op.
// Returns whether the key is new.
func (s *Set[K]) Add(key K) bool {
	return s.set(key, struct{}{})
}

func (s *Set[K]) Has(key K) bool {
	return s.has(key)
}

func (s *Set[K]) Remove(key K) bool {
	return s.delete(key)
}
