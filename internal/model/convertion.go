package model

import (
	"github.com/fairytale-lab/backend/internal/domain/progression"
	"github.com/fairytale-lab/backend/internal/entity"
)

const DefaultDateLayout string = "2006-01-02"

func ConvertUserStats(stats *entity.UserStats) UserStats {
	if stats == nil {
		return UserStats{}
	}

	lastActive := ""
	if stats.LastActiveDate.Valid {
		lastActive = stats.LastActiveDate.Time.Format(DefaultDateLayout)
	}

	badges := []string{}
	badges = append(badges, stats.UnlockedBadges...)

	return UserStats{
		UserID:                 stats.UserID,
		DisplayName:            stats.DisplayName,
		TotalXP:                stats.TotalXP,
		CurrentLevel:           stats.CurrentLevel,
		XPWithinLevel:          progression.XPWithinCurrentLevel(stats.TotalXP, stats.CurrentLevel),
		XPForNextLevel:         progression.XPRequiredForLevel(stats.CurrentLevel),
		TotalTasksCompleted:    stats.TotalTasksCompleted,
		TotalTasksCreated:      stats.TotalTasksCreated,
		TotalProjectsCreated:   stats.TotalProjectsCreated,
		TotalProjectsCompleted: stats.TotalProjectsCompleted,
		TotalTeamMembers:       stats.TotalTeamMembers,
		EarlyBirdTasks:         stats.EarlyBirdTasks,
		NightOwlTasks:          stats.NightOwlTasks,
		CurrentStreak:          stats.CurrentStreak,
		LongestStreak:          stats.LongestStreak,
		LastActiveDate:         lastActive,
		UnlockedBadges:         badges,
	}
}
