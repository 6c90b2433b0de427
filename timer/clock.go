package timer

import (
	"errors"
	"sync"
	"time"
)

// ErrNoLocation is returned by a wall clock without a time zone
var ErrNoLocation = errors.New("wall clock has no location")

// WallClock reads the current time of day
type WallClock interface {
	Now() (time.Time, error)
}

// SystemWallClock reads the system clock in a fixed location
type SystemWallClock struct {
	Location *time.Location
}

// NewSystemWallClock returns a clock for the named zone, empty means local time
func NewSystemWallClock(zone string) (*SystemWallClock, error) {
	if zone == "" {
		return &SystemWallClock{Location: time.Local}, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &SystemWallClock{Location: loc}, nil
}

// Now returns the current time in the clock's location
func (c *SystemWallClock) Now() (time.Time, error) {
	if c == nil || c.Location == nil {
		return time.Time{}, ErrNoLocation
	}
	return time.Now().In(c.Location), nil
}

// MockWallClock provides a controllable wall clock for testing
type MockWallClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	err         error
}

// NewMockWallClock creates a mock clock at the given time
func NewMockWallClock(startTime time.Time) *MockWallClock {
	return &MockWallClock{currentTime: startTime}
}

// Now returns the mocked time or the injected failure
func (m *MockWallClock) Now() (time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return time.Time{}, m.err
	}
	return m.currentTime, nil
}

// SetTime sets the current time
func (m *MockWallClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the current time forward
func (m *MockWallClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SetError makes subsequent reads fail with err, nil clears it
func (m *MockWallClock) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
