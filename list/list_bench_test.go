package list

import "testing"

func BenchmarkAppendPop(b *testing.B) {
	l := New[int](Append)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(i)
		_, _ = l.Pop()
	}
}

func BenchmarkPrependPop(b *testing.B) {
	l := New[int](Prepend)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(i)
		_, _ = l.Pop()
	}
}

func BenchmarkOrderedAdd64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := NewOrdered[int](intLess)
		b.StartTimer()
		for j := 0; j < 64; j++ {
			l.Add((j * 2654435761) & 0xFFFF)
		}
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
		l := New[int](Append)
		for _, v := range vals {
			l.Add(v)
		}
		b.StartTimer()
		l.Sort(intLess)
	}
}
