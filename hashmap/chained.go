package hashmap

import (
	"iter"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"
)

// ErrConcurrentModification is the panic value of a Range or All iteration
// that observes a structural mutation of its ChainedMap mid-iteration.
var ErrConcurrentModification = errors.New("map modified during iteration")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket holds the entries whose keys hash to the same slot. Entries within a
// bucket are unordered.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

// ChainedMap is a hash table that resolves collisions by chaining: keys hash
// to one of a growable array of buckets, and each bucket holds every entry
// whose key landed in its slot.
//
// A new ChainedMap holds no buckets and performs no allocation until the
// first Store. Once the number of entries exceeds 3/4 of the bucket count,
// the bucket array doubles and every entry is rehashed into the new array in
// one step; a grown map never shrinks.
//
// ChainedMap is not safe for concurrent use. The thread-safe implementations
// of HashMap in this package (SyncMap, ConcurrentMap, CornelkMap) are the
// supported route when internal synchronization is needed.
type ChainedMap[K comparable, V any] struct {
	buckets []bucket[K, V]
	hasher  Hasher[K]
	size    int

	// version is incremented on every structural mutation so that live
	// iterators can detect the mutation and fail fast.
	version uint64

	log logger.Logger
}

// NewChainedMap creates an empty ChainedMap keyed by the runtime's hash
// function.
func NewChainedMap[K comparable, V any]() *ChainedMap[K, V] {
	return NewChainedMapWithHasher[K, V](defaultHasher[K]())
}

// NewChainedMapWithHasher creates an empty ChainedMap that hashes keys with
// the given Hasher. The Hasher must hash equal keys identically.
func NewChainedMapWithHasher[K comparable, V any](hasher Hasher[K]) *ChainedMap[K, V] {
	m := &ChainedMap[K, V]{
		hasher: hasher,
	}

	config.InitLogger(&m.log, m)

	return m
}

// Len returns the number of entries in the map.
func (m *ChainedMap[K, V]) Len() int {
	return m.size
}

// IsEmpty returns true if the map contains no entries.
func (m *ChainedMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Swap stores value for key and returns the previous value, if any. The key
// itself is not replaced when it was already present.
func (m *ChainedMap[K, V]) Swap(key K, value V) (prev V, loaded bool) {
	if len(m.buckets) == 0 || m.size > 3*len(m.buckets)/4 {
		m.grow()
	}

	b := &m.buckets[m.index(key)]
	for i := range b.entries {
		if b.entries[i].key == key {
			prev = b.entries[i].value
			b.entries[i].value = value
			m.version++
			return prev, true
		}
	}

	b.entries = append(b.entries, entry[K, V]{key: key, value: value})
	m.size++
	m.version++
	return prev, false
}

// Store stores value for key, overwriting any previous value.
func (m *ChainedMap[K, V]) Store(key K, value V) {
	m.Swap(key, value)
}

// Load returns the value stored for key.
func (m *ChainedMap[K, V]) Load(key K) (val V, loaded bool) {
	if len(m.buckets) == 0 {
		return val, false
	}

	b := &m.buckets[m.index(key)]
	for i := range b.entries {
		if b.entries[i].key == key {
			return b.entries[i].value, true
		}
	}
	return val, false
}

// Contains returns true if the map holds an entry for key.
func (m *ChainedMap[K, V]) Contains(key K) bool {
	_, loaded := m.Load(key)
	return loaded
}

// LoadOrStore returns the existing value for key if present. Otherwise it
// stores and returns the given value. The loaded result is true if the value
// was loaded rather than stored.
func (m *ChainedMap[K, V]) LoadOrStore(key K, value V) (val V, loaded bool) {
	if val, loaded = m.Load(key); loaded {
		return val, true
	}
	m.Swap(key, value)
	return value, false
}

// LoadAndDelete removes the entry for key and returns its value, if any.
//
// Bucket order carries no meaning, so removal swaps the victim with the
// bucket's last entry instead of shifting.
func (m *ChainedMap[K, V]) LoadAndDelete(key K) (val V, exists bool) {
	if len(m.buckets) == 0 {
		return val, false
	}

	b := &m.buckets[m.index(key)]
	for i := range b.entries {
		if b.entries[i].key == key {
			val = b.entries[i].value
			last := len(b.entries) - 1
			b.entries[i] = b.entries[last]
			b.entries[last] = entry[K, V]{}
			b.entries = b.entries[:last]
			m.size--
			m.version++
			return val, true
		}
	}
	return val, false
}

// Delete removes the entry for key, if any.
func (m *ChainedMap[K, V]) Delete(key K) {
	m.LoadAndDelete(key)
}

// Range iterates over the map's key/value pairs in no particular order, if
// the callback function returns false, iteration stops.
//
// Structurally mutating the map from within the callback panics with
// ErrConcurrentModification on the next step.
func (m *ChainedMap[K, V]) Range(cb func(K, V) (contd bool)) {
	version := m.version
	for i := range m.buckets {
		for j := range m.buckets[i].entries {
			if m.version != version {
				panic(ErrConcurrentModification)
			}
			e := &m.buckets[i].entries[j]
			if !cb(e.key, e.value) {
				return
			}
		}
	}
}

// All returns an iterator over the map's key/value pairs in no particular
// order. The sequence is lazy and restartable; structural mutation while
// ranging panics with ErrConcurrentModification.
func (m *ChainedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		version := m.version
		for i := range m.buckets {
			for j := range m.buckets[i].entries {
				if m.version != version {
					panic(ErrConcurrentModification)
				}
				e := &m.buckets[i].entries[j]
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// grow doubles the bucket array (or allocates the first bucket) and rehashes
// every entry into it. The new array is fully populated before it replaces
// the old one, so no caller ever observes a partially-rehashed map.
func (m *ChainedMap[K, V]) grow() {
	target := 1
	if n := len(m.buckets); n > 0 {
		target = 2 * n
	}

	buckets := make([]bucket[K, V], target)
	for i := range m.buckets {
		for _, e := range m.buckets[i].entries {
			idx := m.hasher(e.key) % uint64(target)
			buckets[idx].entries = append(buckets[idx].entries, e)
		}
	}

	m.log.Debug("Grew from %d to %d buckets (%d entries rehashed).", len(m.buckets), target, m.size)

	m.buckets = buckets
	m.version++
}

func (m *ChainedMap[K, V]) index(key K) uint64 {
	return m.hasher(key) % uint64(len(m.buckets))
}
