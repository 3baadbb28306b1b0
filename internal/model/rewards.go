package model

type UserStats struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`

	TotalXP        int64 `json:"total_xp"`
	CurrentLevel   int   `json:"current_level"`
	XPWithinLevel  int64 `json:"xp_within_level"`
	XPForNextLevel int64 `json:"xp_for_next_level"`

	TotalTasksCompleted    int64 `json:"total_tasks_completed"`
	TotalTasksCreated      int64 `json:"total_tasks_created"`
	TotalProjectsCreated   int64 `json:"total_projects_created"`
	TotalProjectsCompleted int64 `json:"total_projects_completed"`
	TotalTeamMembers       int64 `json:"total_team_members"`
	EarlyBirdTasks         int64 `json:"early_bird_tasks"`
	NightOwlTasks          int64 `json:"night_owl_tasks"`

	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	LastActiveDate string `json:"last_active_date,omitempty"`

	UnlockedBadges []string `json:"unlocked_badges"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int64  `json:"xp_reward"`
	Unlocked    bool   `json:"unlocked"`
}

// Reward is what a single domain event earned, returned so the client can
// show the notification.
type Reward struct {
	XPEarned       int64   `json:"xp_earned"`
	TotalXP        int64   `json:"total_xp"`
	CurrentLevel   int     `json:"current_level"`
	CurrentStreak  int     `json:"current_streak"`
	UnlockedBadges []Badge `json:"unlocked_badges"`
}

type CompleteTaskRequest struct{}

type CompleteTaskResponse struct {
	Reward
}

type CreateTaskRequest struct{}

type CreateTaskResponse struct {
	Reward
}

type CreateProjectRequest struct{}

type CreateProjectResponse struct {
	Reward
}

type CompleteProjectRequest struct{}

type CompleteProjectResponse struct {
	Reward
}

type AddTeamMemberRequest struct{}

type AddTeamMemberResponse struct {
	Reward
}

type RecordActivityRequest struct{}

type RecordActivityResponse struct {
	Streak   int   `json:"streak"`
	XPEarned int64 `json:"xp_earned"`
}

type GetMyStatsRequest struct{}

type GetMyStatsResponse struct {
	UserStats
}

type GetBadgesRequest struct{}

type GetBadgesResponse struct {
	Badges []Badge `json:"badges"`
}
