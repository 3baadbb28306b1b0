package model

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`

	TotalXP             int64 `json:"total_xp"`
	CurrentLevel        int   `json:"current_level"`
	TotalTasksCompleted int64 `json:"total_tasks_completed"`
	LongestStreak       int   `json:"longest_streak"`

	IsDemo bool `json:"is_demo"`
}

type GetLeaderboardRequest struct {
	Limit int `json:"limit"`
}

type GetLeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
