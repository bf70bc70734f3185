package ringbuf

import "testing"

func TestNextWrite(t *testing.T) {
	tests := []struct {
		cur, n, expected int
	}{
		{0, 5, 1},
		{3, 5, 4},
		{4, 5, 0},
		{0, 1, 0},
	}

	for _, test := range tests {
		if got := nextWrite(test.cur, test.n); got != test.expected {
			t.Errorf("nextWrite(%d, %d) = %d, expected %d", test.cur, test.n, got, test.expected)
		}
	}
}

func TestNewestIndex(t *testing.T) {
	tests := []struct {
		next, n, expected int
	}{
		{0, 5, 4},
		{1, 5, 0},
		{4, 5, 3},
		{0, 1, 0},
	}

	for _, test := range tests {
		if got := newestIndex(test.next, test.n); got != test.expected {
			t.Errorf("newestIndex(%d, %d) = %d, expected %d", test.next, test.n, got, test.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		newest, distance, n, expected int
	}{
		{4, 0, 5, 4},
		{4, 4, 5, 0},
		{1, 3, 5, 3}, // wraps: two slots short of newest
		{0, 1, 5, 4},
		{2, 2, 5, 0},
	}

	for _, test := range tests {
		if got := resolve(test.newest, test.distance, test.n); got != test.expected {
			t.Errorf("resolve(%d, %d, %d) = %d, expected %d",
				test.newest, test.distance, test.n, got, test.expected)
		}
	}
}
