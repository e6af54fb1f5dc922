package dynarray

import "testing"

func BenchmarkAppend(b *testing.B) {
	a, _ := New[int](4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append(i)
	}
}

func BenchmarkAppendDeleteLast(b *testing.B) {
	a, _ := New[int](64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append(i)
		a.DeleteLast()
	}
}

func BenchmarkGet(b *testing.B) {
	a, _ := New[int](4)
	for i := 0; i < 1024; i++ {
		a.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Get(i & 1023)
	}
}

func BenchmarkSort1K(b *testing.B) {
	vals := make([]int, 1024)
	for i := range vals {
		vals[i] = (i * 2654435761) & 0xFFFF
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a, _ := New[int](4)
		for _, v := range vals {
			a.Append(v)
		}
		b.StartTimer()
		a.Sort(func(x, y int) bool { return x < y })
	}
}
