package ringbuf

import (
	"fmt"
	"testing"
)

// BenchmarkFixedPush benchmarks pushes across different capacities.
func BenchmarkFixedPush(b *testing.B) {
	for _, capacity := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("capacity_%d", capacity), func(b *testing.B) {
			buf := New[int](capacity)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Push(i)
			}
		})
	}
}

func BenchmarkFixedGet(b *testing.B) {
	const capacity = 256
	buf := New[int](capacity)
	for i := 0; i < capacity; i++ {
		buf.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = buf.Get(i % capacity)
	}
}

func BenchmarkFixedIter(b *testing.B) {
	const capacity = 256
	buf := New[int](capacity)
	for i := 0; i < capacity; i++ {
		buf.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := buf.Iter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkGuardedPush benchmarks concurrent pushes through the lock.
func BenchmarkGuardedPush(b *testing.B) {
	buf, err := NewGuarded[int](256)
	if err != nil {
		b.Fatal(err)
	}

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _, _ = buf.Push(i)
			i++
		}
	})
}

// BenchmarkGuardedNewest benchmarks shared-access reads through borrow
// handles.
func BenchmarkGuardedNewest(b *testing.B) {
	buf, err := GuardedWithList([]int{1, 2, 3, 4, 5})
	if err != nil {
		b.Fatal(err)
	}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			ref, err := buf.Newest()
			if err != nil {
				b.Error(err)
				return
			}
			_ = *ref.Value()
			ref.Release()
		}
	})
}
