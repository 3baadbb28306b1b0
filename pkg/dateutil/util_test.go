package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_IsSameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 10, 0, 1, 0, 0, time.UTC)
	night := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, time.March, 11, 0, 1, 0, 0, time.UTC)

	require.True(t, IsSameDay(morning, night))
	require.False(t, IsSameDay(night, nextDay))
}

func Test_IsYesterdayOf(t *testing.T) {
	day9 := time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC)
	day10 := time.Date(2024, time.March, 10, 0, 1, 0, 0, time.UTC)
	day11 := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)

	require.True(t, IsYesterdayOf(day9, day10))
	require.False(t, IsYesterdayOf(day9, day11))
	require.False(t, IsYesterdayOf(day10, day9))

	// Month boundary.
	require.True(t, IsYesterdayOf(
		time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	))
}
