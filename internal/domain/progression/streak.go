package progression

import (
	"database/sql"
	"time"

	"github.com/fairytale-lab/backend/pkg/dateutil"
)

const (
	DayStreakBonusXP  = 5
	WeekStreakBonusXP = 25
)

type StreakUpdate struct {
	CurrentStreak int
	LongestStreak int
	XPBonus       int64

	// Advanced is false when the streak was already counted today. The
	// caller must not write anything in that case.
	Advanced bool
}

// AdvanceStreak applies one day of activity to a streak. Dates are compared
// at day granularity; the caller supplies today so backdated clocks stay out
// of scope here.
func AdvanceStreak(current, longest int, lastActive sql.NullTime, today time.Time) StreakUpdate {
	if lastActive.Valid && dateutil.IsSameDay(lastActive.Time, today) {
		return StreakUpdate{
			CurrentStreak: current,
			LongestStreak: longest,
			XPBonus:       0,
			Advanced:      false,
		}
	}

	newStreak := 1
	xpBonus := int64(DayStreakBonusXP)

	if lastActive.Valid && dateutil.IsYesterdayOf(lastActive.Time, today) {
		newStreak = current + 1
		if newStreak%7 == 0 {
			xpBonus += WeekStreakBonusXP
		}
	}

	newLongest := longest
	if newStreak > newLongest {
		newLongest = newStreak
	}

	return StreakUpdate{
		CurrentStreak: newStreak,
		LongestStreak: newLongest,
		XPBonus:       xpBonus,
		Advanced:      true,
	}
}
