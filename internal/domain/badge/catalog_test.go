package badge

import (
	"testing"

	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_DefaultCatalog_Size(t *testing.T) {
	catalog := NewDefaultCatalog()
	require.Len(t, catalog.All(), 12)
}

func Test_DefaultCatalog_Get(t *testing.T) {
	catalog := NewDefaultCatalog()

	b, ok := catalog.Get("first_task")
	require.True(t, ok)
	require.Equal(t, "Getting Started", b.Name)
	require.Equal(t, "badge-1", b.Icon)
	require.Equal(t, int64(50), b.XPReward)

	_, ok = catalog.Get("not_a_badge")
	require.False(t, ok)
}

func Test_Evaluate_Thresholds(t *testing.T) {
	catalog := NewDefaultCatalog()

	unlocked := catalog.Evaluate(entity.UserStats{TotalTasksCompleted: 1})
	require.Len(t, unlocked, 1)
	require.Equal(t, "first_task", unlocked[0].ID)

	unlocked = catalog.Evaluate(entity.UserStats{TotalTasksCompleted: 10})
	require.Len(t, unlocked, 2)
	require.Equal(t, "first_task", unlocked[0].ID)
	require.Equal(t, "ten_tasks", unlocked[1].ID)

	unlocked = catalog.Evaluate(entity.UserStats{TotalTasksCompleted: 9})
	require.Len(t, unlocked, 1)
}

func Test_Evaluate_DeclarationOrder(t *testing.T) {
	catalog := NewDefaultCatalog()

	unlocked := catalog.Evaluate(entity.UserStats{
		TotalTasksCompleted:    100,
		TotalProjectsCreated:   5,
		TotalProjectsCompleted: 1,
		LongestStreak:          30,
		TotalTeamMembers:       1,
		EarlyBirdTasks:         1,
		NightOwlTasks:          1,
	})

	require.Len(t, unlocked, 12)
	ids := make([]string, 0, len(unlocked))
	for _, b := range unlocked {
		ids = append(ids, b.ID)
	}

	require.Equal(t, []string{
		"first_task", "ten_tasks", "fifty_tasks", "hundred_tasks",
		"first_project", "five_projects", "project_completed",
		"streak_7", "streak_30", "team_player", "early_bird", "night_owl",
	}, ids)
}

func Test_Evaluate_SkipsAlreadyUnlocked(t *testing.T) {
	catalog := NewDefaultCatalog()

	unlocked := catalog.Evaluate(entity.UserStats{
		TotalTasksCompleted: 10,
		UnlockedBadges:      entity.Array[string]{"first_task"},
	})
	require.Len(t, unlocked, 1)
	require.Equal(t, "ten_tasks", unlocked[0].ID)
}

func Test_Evaluate_StreakUsesLongest(t *testing.T) {
	catalog := NewDefaultCatalog()

	// A broken streak still counts once the milestone was reached.
	unlocked := catalog.Evaluate(entity.UserStats{
		CurrentStreak: 1,
		LongestStreak: 7,
	})
	require.Len(t, unlocked, 1)
	require.Equal(t, "streak_7", unlocked[0].ID)
}
