package hashmap_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/collections/hashmap"
)

// Every implementation of HashMap must agree on the operation contracts, no
// matter which backend supplies the storage.
var _ = Describe("HashMap Conformance Tests", func() {
	implementations := map[string]func() hashmap.HashMap[string, int]{
		"ChainedMap": func() hashmap.HashMap[string, int] {
			return hashmap.NewChainedMap[string, int]()
		},
		"SyncMap": func() hashmap.HashMap[string, int] {
			return &hashmap.MapCounter[string, int]{
				BaseHashMap: hashmap.NewSyncMap[string, int](),
			}
		},
		"ConcurrentMap": func() hashmap.HashMap[string, int] {
			return hashmap.NewConcurrentMap[int](32)
		},
		"CornelkMap": func() hashmap.HashMap[string, int] {
			return hashmap.NewCornelkMap[string, int](8)
		},
		"OrderedMap": func() hashmap.HashMap[string, int] {
			return hashmap.NewOrderedMap[string, int]()
		},
	}

	for name, create := range implementations {
		Context(name, func() {
			var m hashmap.HashMap[string, int]

			BeforeEach(func() {
				m = create()
			})

			It("should store and load values", func() {
				m.Store("key1", 42)
				value, ok := m.Load("key1")
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal(42))
				Expect(m.Len()).To(Equal(1))
			})

			It("should return false for non-existent keys", func() {
				_, ok := m.Load("key2")
				Expect(ok).To(BeFalse())
			})

			It("should delete a key", func() {
				m.Store("key3", 84)
				m.Delete("key3")
				_, ok := m.Load("key3")
				Expect(ok).To(BeFalse())
				Expect(m.Len()).To(Equal(0))
			})

			It("should load and delete a key", func() {
				m.Store("key4", 128)
				value, ok := m.LoadAndDelete("key4")
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal(128))
				_, ok = m.Load("key4")
				Expect(ok).To(BeFalse())
			})

			It("should load or store a key", func() {
				value, loaded := m.LoadOrStore("key5", 256)
				Expect(loaded).To(BeFalse())
				Expect(value).To(Equal(256))

				value, loaded = m.LoadOrStore("key5", 512)
				Expect(loaded).To(BeTrue())
				Expect(value).To(Equal(256))
			})

			It("should swap values", func() {
				_, loaded := m.Swap("key6", 512)
				Expect(loaded).To(BeFalse())

				prev, loaded := m.Swap("key6", 1024)
				Expect(loaded).To(BeTrue())
				Expect(prev).To(Equal(512))

				value, ok := m.Load("key6")
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal(1024))
				Expect(m.Len()).To(Equal(1))
			})

			It("should iterate over elements with Range", func() {
				m.Store("key7", 10)
				m.Store("key8", 20)
				m.Store("key9", 30)

				seen := make(map[string]int)
				m.Range(func(key string, value int) bool {
					seen[key] = value
					return true
				})

				Expect(seen).To(HaveLen(3))
				Expect(seen).To(HaveKeyWithValue("key7", 10))
				Expect(seen).To(HaveKeyWithValue("key8", 20))
				Expect(seen).To(HaveKeyWithValue("key9", 30))
			})

			It("should track its length across many operations", func() {
				for i := 0; i < 50; i++ {
					m.Store(fmt.Sprintf("key%d", i), i)
				}
				Expect(m.Len()).To(Equal(50))

				for i := 0; i < 25; i++ {
					m.Delete(fmt.Sprintf("key%d", i))
				}
				Expect(m.Len()).To(Equal(25))
			})
		})
	}
})
