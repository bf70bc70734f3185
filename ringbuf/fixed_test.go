package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/history/errors"
)

func TestFixedPushEviction(t *testing.T) {
	buf := New[int](3)

	expected := []struct {
		push    int
		evicted int
		ok      bool
	}{
		{1, 0, false},
		{2, 0, false},
		{3, 0, false},
		{4, 1, true},
		{5, 2, true},
	}

	for _, step := range expected {
		evicted, ok := buf.Push(step.push)
		assert.Equal(t, step.ok, ok, "push %d", step.push)
		if step.ok {
			assert.Equal(t, step.evicted, evicted, "push %d", step.push)
		}
	}
}

func TestFixedStoredAfterEachPush(t *testing.T) {
	const capacity = 4
	buf := New[int](capacity)

	for i := 0; i < capacity*3; i++ {
		prev := buf.Stored()
		_, evicted := buf.Push(i)

		expected := prev + 1
		if expected > capacity {
			expected = capacity
		}
		require.Equal(t, expected, buf.Stored(), "after push %d", i)

		// A push returns a previous value exactly when the buffer was full.
		assert.Equal(t, prev == capacity, evicted, "after push %d", i)
	}
}

func TestFixedPopSeeded(t *testing.T) {
	buf, err := WithIndex([]int{3, 4, 5, 1, 2}, 2)
	require.NoError(t, err)

	for _, expected := range []int{1, 2, 3, 4, 5} {
		v, ok := buf.Pop()
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}

	_, ok := buf.Pop()
	assert.False(t, ok)
}

func TestFixedWithIndexOutOfBounds(t *testing.T) {
	_, err := WithIndex([]int{1, 2, 3}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrBadSeedIndex)

	_, err = WithIndex([]int{1, 2, 3}, -1)
	assert.ErrorIs(t, err, errors.ErrBadSeedIndex)
}

func TestFixedNewestOldest(t *testing.T) {
	buf := WithList([]int{1, 2, 3, 4, 5})

	newest, ok := buf.Newest()
	require.True(t, ok)
	assert.Equal(t, 5, newest)

	oldest, ok := buf.Oldest()
	require.True(t, ok)
	assert.Equal(t, 1, oldest)
}

func TestFixedEmptyPeeks(t *testing.T) {
	buf := New[string](3)

	_, ok := buf.Newest()
	assert.False(t, ok)
	_, ok = buf.Oldest()
	assert.False(t, ok)
	_, ok = buf.Pop()
	assert.False(t, ok)
}

func TestFixedGet(t *testing.T) {
	buf := WithList([]int{1, 2, 3, 4, 5})

	for distance, expected := range []int{5, 4, 3, 2, 1} {
		v, ok, err := buf.Get(distance)
		require.NoError(t, err)
		require.True(t, ok, "distance %d", distance)
		assert.Equal(t, expected, v, "distance %d", distance)
	}

	_, _, err := buf.Get(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrIndexOutOfRange)
}

func TestFixedGetMatchesPeeks(t *testing.T) {
	buf := New[int](5)
	for i := 0; i < 8; i++ {
		buf.Push(i)

		newest, _ := buf.Newest()
		v, ok, err := buf.Get(0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, newest, v, "Get(0) after push %d", i)

		oldest, _ := buf.Oldest()
		v, ok, err = buf.Get(buf.Stored() - 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, oldest, v, "Get(stored-1) after push %d", i)
	}
}

func TestFixedGetUnwrittenSlot(t *testing.T) {
	buf := New[int](5)
	buf.Push(10)
	buf.Push(20)

	_, ok, err := buf.Get(3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFixedComprehensive(t *testing.T) {
	buf := New[int](5)

	push := func(v int, expectEvict bool, evicted int) {
		t.Helper()
		got, ok := buf.Push(v)
		require.Equal(t, expectEvict, ok, "push %d", v)
		if expectEvict {
			require.Equal(t, evicted, got, "push %d", v)
		}
	}
	pop := func(expected int) {
		t.Helper()
		got, ok := buf.Pop()
		require.True(t, ok)
		require.Equal(t, expected, got)
	}

	push(1, false, 0)
	push(2, false, 0)
	push(3, false, 0)
	pop(1)
	require.Equal(t, 2, buf.Stored())
	push(4, false, 0)
	push(5, false, 0)
	push(6, false, 0)
	push(7, true, 2)

	oldest, _ := buf.Oldest()
	require.Equal(t, 3, oldest)
	require.Equal(t, 5, buf.Stored())

	pop(3)
	pop(4)
	pop(5)

	oldest, _ = buf.Oldest()
	require.Equal(t, 6, oldest)
	newest, _ := buf.Newest()
	require.Equal(t, 7, newest)

	pop(6)

	oldest, _ = buf.Oldest()
	require.Equal(t, 7, oldest)
	newest, _ = buf.Newest()
	require.Equal(t, 7, newest)

	pop(7)
	require.Equal(t, 0, buf.Stored())

	_, ok := buf.Newest()
	require.False(t, ok)
	_, ok = buf.Oldest()
	require.False(t, ok)
}

func TestFixedIteratorFull(t *testing.T) {
	buf, err := WithIndex([]int{6, 7, 8, 9, 4, 5}, 3)
	require.NoError(t, err)

	it := buf.Iter()
	for _, expected := range []int{9, 8, 7, 6, 5, 4} {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestFixedIteratorBackwardFull(t *testing.T) {
	buf, err := WithIndex([]int{6, 7, 8, 9, 4, 5}, 3)
	require.NoError(t, err)

	it := buf.Iter()
	for _, expected := range []int{4, 5, 6, 7, 8, 9} {
		v, ok := it.NextBack()
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}

	_, ok := it.NextBack()
	assert.False(t, ok)
}

func TestFixedIteratorPartial(t *testing.T) {
	buf := New[int](5)
	for v := 0; v < 3; v++ {
		buf.Push(v)
	}

	it := buf.Iter()
	for _, expected := range []int{2, 1, 0} {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}
	_, ok := it.Next()
	assert.False(t, ok)

	it = buf.Iter()
	for _, expected := range []int{0, 1, 2} {
		v, ok := it.NextBack()
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}
	_, ok = it.NextBack()
	assert.False(t, ok)
}

func TestFixedIteratorSingle(t *testing.T) {
	buf := New[int](5)
	buf.Push(0)

	it := buf.Iter()
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	_, ok = it.Next()
	assert.False(t, ok)

	it = buf.Iter()
	v, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	_, ok = it.NextBack()
	assert.False(t, ok)
}

// Each direction of a fresh iterator enumerates every live element
// exactly once, after pops have moved the oldest cursor off slot zero.
func TestFixedIteratorAfterWrap(t *testing.T) {
	buf := New[int](4)
	for v := 1; v <= 6; v++ {
		buf.Push(v)
	}
	buf.Pop()

	var forward []int
	it := buf.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		forward = append(forward, v)
	}
	assert.Equal(t, []int{6, 5, 4}, forward)

	var backward []int
	it = buf.Iter()
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		backward = append(backward, v)
	}
	assert.Equal(t, []int{4, 5, 6}, backward)
}

func TestFixedClone(t *testing.T) {
	buf := WithList([]int{1, 2, 3})
	dup := buf.Clone()

	buf.Push(4)

	newest, _ := buf.Newest()
	assert.Equal(t, 4, newest)

	newest, _ = dup.Newest()
	assert.Equal(t, 3, newest, "clone must be unaffected by later pushes")
	assert.Equal(t, 3, dup.Stored())
}

func TestFixedMinimumCapacity(t *testing.T) {
	buf := New[int](0)
	require.Equal(t, 1, buf.Capacity())

	_, ok := buf.Push(1)
	assert.False(t, ok)
	evicted, ok := buf.Push(2)
	require.True(t, ok)
	assert.Equal(t, 1, evicted)
}
