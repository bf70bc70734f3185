package ringbuf

// Pure index arithmetic for a ring of n slots. These helpers have no side
// effects; callers are responsible for the documented input contracts.

// nextWrite returns the slot that follows cur in a ring of n slots.
func nextWrite(cur, n int) int {
	return (cur + 1) % n
}

// newestIndex maps the next-write cursor to the most recently written
// slot. The result is meaningless for an empty ring; callers must guard
// on the stored count first.
func newestIndex(next, n int) int {
	if next == 0 {
		return n - 1
	}
	return next - 1
}

// resolve maps a distance back from the newest slot to a physical slot,
// wrapping around the ring. Callers must check 0 <= distance < n first.
func resolve(newest, distance, n int) int {
	if newest < distance {
		return n - (distance - newest)
	}
	return newest - distance
}
