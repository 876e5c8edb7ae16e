package heap_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/collections/heap"
)

var _ = Describe("Heap Tests", func() {
	It("Will create a new, empty heap correctly", func() {
		h := heap.NewOrdered[int]()
		Expect(h).ToNot(BeNil())
		Expect(h.Len()).To(Equal(0))

		_, ok := h.Pop()
		Expect(ok).To(BeFalse())
		_, ok = h.Peek()
		Expect(ok).To(BeFalse())
	})

	It("Will pop elements in ascending order", func() {
		h := heap.NewOrdered[int]()
		values := rand.Perm(100)
		for _, v := range values {
			h.Push(v)
		}
		Expect(h.Len()).To(Equal(100))

		sort.Ints(values)
		for _, expected := range values {
			min, ok := h.Peek()
			Expect(ok).To(BeTrue())
			Expect(min).To(Equal(expected))

			popped, ok := h.Pop()
			Expect(ok).To(BeTrue())
			Expect(popped).To(Equal(expected))
		}
		Expect(h.Len()).To(Equal(0))
	})

	It("Will order elements by the supplied less function", func() {
		type task struct {
			name     string
			priority int
		}

		h := heap.New(func(a, b task) bool { return a.priority > b.priority })
		h.Push(task{name: "low", priority: 1})
		h.Push(task{name: "high", priority: 10})
		h.Push(task{name: "mid", priority: 5})

		for _, expected := range []string{"high", "mid", "low"} {
			t, ok := h.Pop()
			Expect(ok).To(BeTrue())
			Expect(t.name).To(Equal(expected))
		}
	})
})
