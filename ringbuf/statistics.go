package ringbuf

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks guarded buffer activity. Counters are updated
// atomically so reading them never contends with buffer operations.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes    int64
	pops      int64
	peeks     int64
	evictions int64

	// Protected by mutex
	mu        sync.RWMutex
	startTime time.Time
	stored    int64
	maxStored int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records a push operation.
func (s *Statistics) Push() {
	atomic.AddInt64(&s.pushes, 1)
}

// Pop records a pop operation.
func (s *Statistics) Pop() {
	atomic.AddInt64(&s.pops, 1)
}

// Peek records a read-only access (newest, oldest, get or iteration).
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Eviction records a value displaced by a push into a full buffer.
func (s *Statistics) Eviction() {
	atomic.AddInt64(&s.evictions, 1)
}

// UpdateStored updates the current live count.
func (s *Statistics) UpdateStored(stored int64) {
	s.mu.Lock()
	s.stored = stored
	if stored > s.maxStored {
		s.maxStored = stored
	}
	s.mu.Unlock()
}

// Pushes returns the total number of push operations.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Pops returns the total number of pop operations.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.pops)
}

// Peeks returns the total number of read-only accesses.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Evictions returns the total number of values displaced by pushes.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Stored returns the live count at the last update.
func (s *Statistics) Stored() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stored
}

// MaxStored returns the highest live count observed.
func (s *Statistics) MaxStored() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxStored
}

// EvictionRate returns the fraction of pushes that displaced a value
// (0.0 to 1.0).
func (s *Statistics) EvictionRate() float64 {
	pushes := s.Pushes()
	if pushes == 0 {
		return 0.0
	}

	return float64(s.Evictions()) / float64(pushes)
}

// Throughput returns the average number of pushes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pushes()) / elapsed.Seconds()
}

// Utilization returns the live count as a fraction of capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.Stored()) / float64(capacity)
}

// Uptime returns how long the buffer has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.pops, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.evictions, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.stored = 0
	s.maxStored = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Pushes       int64         `json:"pushes"`
	Pops         int64         `json:"pops"`
	Peeks        int64         `json:"peeks"`
	Evictions    int64         `json:"evictions"`
	Stored       int64         `json:"stored"`
	MaxStored    int64         `json:"max_stored"`
	EvictionRate float64       `json:"eviction_rate"`
	Throughput   float64       `json:"throughput"`
	Uptime       time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:       s.Pushes(),
		Pops:         s.Pops(),
		Peeks:        s.Peeks(),
		Evictions:    s.Evictions(),
		Stored:       s.Stored(),
		MaxStored:    s.MaxStored(),
		EvictionRate: s.EvictionRate(),
		Throughput:   s.Throughput(),
		Uptime:       s.Uptime(),
	}
}
