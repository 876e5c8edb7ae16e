package hashmap

var (
	deleted = &struct{}{}
)

type BaseHashMap[K any, V any] interface {
	Delete(K)
	Load(K) (val V, loaded bool)
	LoadAndDelete(K) (val V, exists bool)
	LoadOrStore(K, V) (val V, loaded bool)

	// Swap stores the value for the key and returns the previous value, if any.
	Swap(K, V) (prev V, loaded bool)

	// Range iterates over the map's key/value pairs, if the callback function returns true, iteration stops.
	Range(func(K, V) (contd bool))

	Store(K, V)
}

type HashMap[K any, V any] interface {
	BaseHashMap[K, V]
	Len() int
}
