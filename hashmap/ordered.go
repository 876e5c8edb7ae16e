package hashmap

import (
	orderedmap "github.com/elliotchance/orderedmap/v2"
)

// OrderedMap adapts elliotchance/orderedmap to HashMap. Unlike ChainedMap,
// whose buckets carry no ordering, an OrderedMap iterates its entries in
// insertion order; it is the implementation to reach for when callers depend
// on that guarantee.
//
// OrderedMap is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	backend *orderedmap.OrderedMap[K, V]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		backend: orderedmap.NewOrderedMap[K, V](),
	}
}

func (m *OrderedMap[K, V]) Delete(key K) {
	m.backend.Delete(key)
}

func (m *OrderedMap[K, V]) Load(key K) (ret V, ok bool) {
	return m.backend.Get(key)
}

func (m *OrderedMap[K, V]) LoadAndDelete(key K) (val V, exists bool) {
	val, exists = m.backend.Get(key)
	if exists {
		m.backend.Delete(key)
	}
	return
}

func (m *OrderedMap[K, V]) LoadOrStore(key K, value V) (val V, loaded bool) {
	if val, loaded = m.backend.Get(key); loaded {
		return val, true
	}
	m.backend.Set(key, value)
	return value, false
}

func (m *OrderedMap[K, V]) Swap(key K, value V) (prev V, loaded bool) {
	prev, loaded = m.backend.Get(key)
	m.backend.Set(key, value)
	return
}

// Range iterates in insertion order.
func (m *OrderedMap[K, V]) Range(cb func(K, V) bool) {
	for el := m.backend.Front(); el != nil; el = el.Next() {
		if !cb(el.Key, el.Value) {
			return
		}
	}
}

func (m *OrderedMap[K, V]) Store(key K, val V) {
	m.backend.Set(key, val)
}

func (m *OrderedMap[K, V]) Len() int {
	return m.backend.Len()
}
