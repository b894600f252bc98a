package player

import "time"

// Clock abstracts the wall-clock time source so presentation timestamps
// (death time) can be driven by a controllable clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real monotonic time source.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced time source for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock starting at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the mocked time forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
