package entity

import (
	"database/sql"
	"time"

	"golang.org/x/exp/slices"
)

// UserStats is the progression record of one user. It is created lazily on
// the first read and mutated only through the rewards domain.
type UserStats struct {
	UserID      string `gorm:"primaryKey"`
	DisplayName string

	TotalXP      int64
	CurrentLevel int

	TotalTasksCompleted    int64
	TotalTasksCreated      int64
	TotalProjectsCreated   int64
	TotalProjectsCompleted int64
	TotalTeamMembers       int64
	EarlyBirdTasks         int64
	NightOwlTasks          int64

	CurrentStreak int
	LongestStreak int

	// LastActiveDate keeps only the calendar day of the last
	// streak-qualifying activity. Null until the first activity.
	LastActiveDate sql.NullTime

	UnlockedBadges Array[string] `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s UserStats) HasBadge(id string) bool {
	return slices.Contains(s.UnlockedBadges, id)
}
