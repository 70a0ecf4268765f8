package vector

import "testing"

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := 0; j < 1024; j++ {
			v.PushBack(j)
		}
	}
}

func BenchmarkPushBackReserved(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := NewReserved[int](1024)
		for j := 0; j < 1024; j++ {
			v.PushBack(j)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := 0; j < 256; j++ {
			v.Insert(0, j)
		}
	}
}

func BenchmarkUncheckedIndex(b *testing.B) {
	v := NewSized[int](4096)
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for j := 0; j < v.Size(); j++ {
			sum += v.Index(j)
		}
	}
	_ = sum
}
