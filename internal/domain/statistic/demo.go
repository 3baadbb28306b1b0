package statistic

import "github.com/fairytale-lab/backend/internal/model"

// DemoPool is a fixed set of synthetic identities that keeps the leaderboard
// populated before real users exist. Identities are stable across calls so
// ranks stay deterministic.
func DemoPool() []model.LeaderboardEntry {
	return []model.LeaderboardEntry{
		{UserID: "demo_1", DisplayName: "Alex Chen", TotalXP: 15420, CurrentLevel: 12, TotalTasksCompleted: 234, LongestStreak: 45, IsDemo: true},
		{UserID: "demo_2", DisplayName: "Sarah Miller", TotalXP: 12850, CurrentLevel: 11, TotalTasksCompleted: 189, LongestStreak: 32, IsDemo: true},
		{UserID: "demo_3", DisplayName: "Jordan Kim", TotalXP: 11200, CurrentLevel: 10, TotalTasksCompleted: 156, LongestStreak: 21, IsDemo: true},
		{UserID: "demo_4", DisplayName: "Morgan Davis", TotalXP: 9870, CurrentLevel: 9, TotalTasksCompleted: 134, LongestStreak: 18, IsDemo: true},
		{UserID: "demo_5", DisplayName: "Casey Taylor", TotalXP: 8450, CurrentLevel: 8, TotalTasksCompleted: 112, LongestStreak: 14, IsDemo: true},
		{UserID: "demo_6", DisplayName: "Riley Johnson", TotalXP: 7200, CurrentLevel: 8, TotalTasksCompleted: 98, LongestStreak: 19, IsDemo: true},
		{UserID: "demo_7", DisplayName: "Avery Williams", TotalXP: 6100, CurrentLevel: 7, TotalTasksCompleted: 82, LongestStreak: 10, IsDemo: true},
		{UserID: "demo_8", DisplayName: "Quinn Brown", TotalXP: 5200, CurrentLevel: 6, TotalTasksCompleted: 68, LongestStreak: 8, IsDemo: true},
		{UserID: "demo_9", DisplayName: "Cameron Lee", TotalXP: 4300, CurrentLevel: 6, TotalTasksCompleted: 56, LongestStreak: 5, IsDemo: true},
		{UserID: "demo_10", DisplayName: "Drew Martinez", TotalXP: 3500, CurrentLevel: 5, TotalTasksCompleted: 45, LongestStreak: 10, IsDemo: true},
		{UserID: "demo_11", DisplayName: "Skyler Garcia", TotalXP: 2800, CurrentLevel: 5, TotalTasksCompleted: 38, LongestStreak: 4, IsDemo: true},
		{UserID: "demo_12", DisplayName: "Aubrey Anderson", TotalXP: 2100, CurrentLevel: 4, TotalTasksCompleted: 28, LongestStreak: 6, IsDemo: true},
		{UserID: "demo_13", DisplayName: "Reese Wilson", TotalXP: 1500, CurrentLevel: 3, TotalTasksCompleted: 20, LongestStreak: 4, IsDemo: true},
		{UserID: "demo_14", DisplayName: "Parker Moore", TotalXP: 950, CurrentLevel: 3, TotalTasksCompleted: 14, LongestStreak: 3, IsDemo: true},
		{UserID: "demo_15", DisplayName: "Sage Thompson", TotalXP: 500, CurrentLevel: 2, TotalTasksCompleted: 8, LongestStreak: 2, IsDemo: true},
	}
}
