package progression

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func Test_AdvanceStreak_FirstActivity(t *testing.T) {
	update := AdvanceStreak(0, 0, sql.NullTime{}, date(2024, time.March, 10))
	require.True(t, update.Advanced)
	require.Equal(t, 1, update.CurrentStreak)
	require.Equal(t, 1, update.LongestStreak)
	require.Equal(t, int64(DayStreakBonusXP), update.XPBonus)
}

func Test_AdvanceStreak_SameDayIsIdempotent(t *testing.T) {
	today := date(2024, time.March, 10)
	lastActive := sql.NullTime{Valid: true, Time: today.Add(-3 * time.Hour)}

	update := AdvanceStreak(4, 9, lastActive, today)
	require.False(t, update.Advanced)
	require.Equal(t, 4, update.CurrentStreak)
	require.Equal(t, 9, update.LongestStreak)
	require.Equal(t, int64(0), update.XPBonus)
}

func Test_AdvanceStreak_ConsecutiveDay(t *testing.T) {
	today := date(2024, time.March, 10)
	lastActive := sql.NullTime{Valid: true, Time: date(2024, time.March, 9)}

	update := AdvanceStreak(3, 3, lastActive, today)
	require.True(t, update.Advanced)
	require.Equal(t, 4, update.CurrentStreak)
	require.Equal(t, 4, update.LongestStreak)
	require.Equal(t, int64(DayStreakBonusXP), update.XPBonus)
}

func Test_AdvanceStreak_WeekMilestoneBonus(t *testing.T) {
	today := date(2024, time.March, 10)
	lastActive := sql.NullTime{Valid: true, Time: date(2024, time.March, 9)}

	update := AdvanceStreak(6, 6, lastActive, today)
	require.True(t, update.Advanced)
	require.Equal(t, 7, update.CurrentStreak)
	require.Equal(t, int64(DayStreakBonusXP+WeekStreakBonusXP), update.XPBonus)

	// Day 14 gets the bonus again.
	update = AdvanceStreak(13, 13, lastActive, today)
	require.Equal(t, 14, update.CurrentStreak)
	require.Equal(t, int64(DayStreakBonusXP+WeekStreakBonusXP), update.XPBonus)
}

func Test_AdvanceStreak_GapResetsButKeepsLongest(t *testing.T) {
	today := date(2024, time.March, 10)
	lastActive := sql.NullTime{Valid: true, Time: date(2024, time.March, 7)}

	update := AdvanceStreak(12, 12, lastActive, today)
	require.True(t, update.Advanced)
	require.Equal(t, 1, update.CurrentStreak)
	require.Equal(t, 12, update.LongestStreak)
	require.Equal(t, int64(DayStreakBonusXP), update.XPBonus)
}

func Test_AdvanceStreak_MidnightBoundary(t *testing.T) {
	// Active at 23:59, back at 00:01 the next day counts as consecutive.
	lastActive := sql.NullTime{
		Valid: true,
		Time:  time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC),
	}
	today := time.Date(2024, time.March, 10, 0, 1, 0, 0, time.UTC)

	update := AdvanceStreak(1, 1, lastActive, today)
	require.True(t, update.Advanced)
	require.Equal(t, 2, update.CurrentStreak)
}
