package chainmap

// Map is a hash map with separate chaining. It grows by doubling its bucket
// array whenever an insertion pushes size/capacity above the load factor,
// and never shrinks.
// The zero value is an empty map ready to use with the default settings.
// Map is not safe for concurrent use.
type Map[K ~string, V any] struct {
	table[K, V]
}

// Entry is a key/value pair copied out of a Map.
type Entry[K ~string, V any] struct {
	Key   K
	Value V
}

// Returns a new instance of the map.
// Fails with ErrInvalidCapacity or ErrInvalidLoadFactor on bad options.
func NewMap[K ~string, V any](opts ...Option) (*Map[K, V], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var m Map[K, V]
	m.init(c)

	return &m, nil
}

// Returns the value for a key and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Checks whether a key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	return m.has(key)
}

// Puts a key in the map, overwriting the value of an existing key in place.
// Returns whether the key is new.
func (m *Map[K, V]) Set(key K, value V) bool {
	return m.set(key, value)
}

// Deletes a key from the map. Returns whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	return m.delete(key)
}

func (m *Map[K, V]) Values() []V {
	return collect(&m.table, func(e entry[K, V]) V {
		return e.value
	})
}

func (m *Map[K, V]) Entries() []Entry[K, V] {
	return collect(&m.table, func(e entry[K, V]) Entry[K, V] {
		return Entry[K, V]{Key: e.key, Value: e.value}
	})
}
