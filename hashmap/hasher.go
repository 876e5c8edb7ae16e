package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes a 64-bit hash of a key. Equal keys must produce equal
// hashes; a Hasher that violates this misplaces entries in ways the map
// cannot detect.
type Hasher[K comparable] func(K) uint64

// defaultHasher hashes arbitrary comparable keys through the runtime's hash
// function, seeded per map.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// XXHasher hashes string keys with xxHash. Unlike the default hasher it is
// deterministic across maps and processes.
func XXHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}
