package testutil

import "time"

// MockClock is a frozen clock. Set Current to the wanted instant.
type MockClock struct {
	Current time.Time
}

func (c *MockClock) Now() time.Time {
	return c.Current
}

func (c *MockClock) Today() time.Time {
	y, m, d := c.Current.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Current.Location())
}

func (c *MockClock) Hour() int {
	return c.Current.Hour()
}
