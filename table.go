package chainmap

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

var (
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidLoadFactor = errors.New("load factor must be in (0, 1]")
)

type entry[K ~string, V any] struct {
	key   K
	value V
}

type config struct {
	capacity   int
	loadFactor float64
	logger     *zap.Logger
}

type Option func(c *config)

// Sets the initial number of buckets.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// Sets the size/capacity ratio above which the table doubles.
func WithLoadFactor(loadFactor float64) Option {
	return func(c *config) {
		c.loadFactor = loadFactor
	}
}

// Sets the logger growth events are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.capacity <= 0 {
		return c, errors.Wrapf(ErrInvalidCapacity, "got %d", c.capacity)
	}

	// Negated so that NaN is rejected too.
	if !(c.loadFactor > 0 && c.loadFactor <= 1) {
		return c, errors.Wrapf(ErrInvalidLoadFactor, "got %v", c.loadFactor)
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c, nil
}

// table is the chained hash table shared by Map and Set.
// Every bucket is a slice of entries in chain order, head first.
type table[K ~string, V any] struct {
	buckets [][]entry[K, V]

	capacity   int
	size       int
	loadFactor float64

	hashFunc func(K) int32
	logger   *zap.Logger
}

func (t *table[K, V]) init(c config) {
	t.buckets = make([][]entry[K, V], c.capacity)
	t.capacity = c.capacity
	t.size = 0
	t.loadFactor = c.loadFactor
	t.logger = c.logger

	if t.hashFunc == nil {
		t.hashFunc = hashKey[K]
	}
}

// Zero-value tables are allocated with the defaults on first insertion.
func (t *table[K, V]) lazyInit() {
	if t.buckets != nil {
		return
	}

	c, _ := newConfig()
	t.init(c)
}

// Returns the bucket index of the key and the position of the key within
// the bucket, or -1 if it's absent.
func (t *table[K, V]) lookup(key K) (int, int) {
	if t.capacity == 0 {
		return -1, -1
	}

	b := bucketIndex(t.hashFunc(key), t.capacity)
	for i := range t.buckets[b] {
		if t.buckets[b][i].key == key {
			return b, i
		}
	}

	return b, -1
}

func (t *table[K, V]) get(key K) (V, bool) {
	b, i := t.lookup(key)
	if i < 0 {
		var zero V
		return zero, false
	}

	return t.buckets[b][i].value, true
}

func (t *table[K, V]) has(key K) bool {
	_, i := t.lookup(key)
	return i >= 0
}

// Inserts or updates the key.
// Returns whether the key is new. Only new keys may trigger growth.
func (t *table[K, V]) set(key K, value V) bool {
	t.lazyInit()

	b, i := t.lookup(key)
	if i >= 0 {
		t.buckets[b][i].value = value
		return false
	}

	t.insert(b, entry[K, V]{key: key, value: value})
	if t.overloaded() {
		t.grow()
	}

	return true
}

// Appends to the tail of the bucket, no duplicate or load check.
func (t *table[K, V]) insert(b int, e entry[K, V]) {
	t.buckets[b] = append(t.buckets[b], e)
	t.size++
}

func (t *table[K, V]) overloaded() bool {
	return float64(t.size)/float64(t.capacity) > t.loadFactor
}

func (t *table[K, V]) delete(key K) bool {
	b, i := t.lookup(key)
	if i < 0 {
		return false
	}

	t.buckets[b] = slices.Delete(t.buckets[b], i, i+1)
	if len(t.buckets[b]) == 0 {
		t.buckets[b] = nil
	}
	t.size--

	return true
}

// Doubles the capacity until the load fits and rehashes every entry into a
// fresh bucket array, walking the old one bucket by bucket, head to tail.
func (t *table[K, V]) grow() {
	oldCapacity := t.capacity
	newCapacity := oldCapacity * 2
	for float64(t.size)/float64(newCapacity) > t.loadFactor {
		newCapacity *= 2
	}

	old := t.buckets

	t.buckets = make([][]entry[K, V], newCapacity)
	t.capacity = newCapacity
	t.size = 0

	for _, bucket := range old {
		for _, e := range bucket {
			t.insert(bucketIndex(t.hashFunc(e.key), newCapacity), e)
		}
	}

	if t.overloaded() {
		panic(fmt.Sprintf("chainmap: load %d/%d exceeds %v after rehash", t.size, t.capacity, t.loadFactor))
	}

	t.logger.Debug("Grew hash table.",
		zap.Int("size", t.size),
		zap.Int("old_capacity", oldCapacity),
		zap.Int("new_capacity", newCapacity))
}

// Number of entries.
func (t *table[K, V]) Len() int {
	return t.size
}

// Number of buckets. Never decreases.
func (t *table[K, V]) Capacity() int {
	return t.capacity
}

// Configured growth threshold.
func (t *table[K, V]) LoadFactor() float64 {
	return t.loadFactor
}

// Drops every entry, keeping the current capacity.
func (t *table[K, V]) Clear() {
	clear(t.buckets)
	t.size = 0
}

// Returns a copy of all keys, in bucket then chain order.
// The order is unrelated to insertion order and may change after growth.
func (t *table[K, V]) Keys() []K {
	return collect(t, func(e entry[K, V]) K {
		return e.key
	})
}

func collect[K ~string, V any, T any](t *table[K, V], f func(e entry[K, V]) T) []T {
	out := make([]T, 0, t.size)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			out = append(out, f(e))
		}
	}

	return out
}
