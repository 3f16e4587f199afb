package rc

import "testing"

func Benchmark_Rc_CloneDrop(b *testing.B) {
	h := New(42)
	defer h.Drop()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := h.Clone()
		c.Drop()
	}
}

func Benchmark_Arc_CloneDrop(b *testing.B) {
	h := NewAtomic(42)
	defer h.Drop()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := h.Clone()
		c.Drop()
	}
}

func Benchmark_Arc_CloneDrop_Parallel(b *testing.B) {
	h := NewAtomic(42)
	defer h.Drop()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c := h.Clone()
			c.Drop()
		}
	})
}

func Benchmark_Rc_Get(b *testing.B) {
	h := New(42)
	defer h.Drop()
	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += *h.Get()
	}
	_ = sink
}
