package badge

import (
	"github.com/fairytale-lab/backend/internal/entity"
)

// Badge is a static definition. The condition must be a pure monotone check
// over the stats snapshot, so a badge can never become un-earned.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XPReward    int64
	Condition   func(stats entity.UserStats) bool
}

// Catalog holds badge definitions in declaration order. It is built once at
// startup and only read after that.
type Catalog struct {
	badges []Badge
	byID   map[string]Badge
}

func NewCatalog(badges ...Badge) *Catalog {
	catalog := &Catalog{byID: make(map[string]Badge)}
	for _, b := range badges {
		catalog.badges = append(catalog.badges, b)
		catalog.byID[b.ID] = b
	}

	return catalog
}

// NewDefaultCatalog returns the product badge set.
func NewDefaultCatalog() *Catalog {
	atLeast := func(counter func(entity.UserStats) int64, threshold int64) func(entity.UserStats) bool {
		return func(stats entity.UserStats) bool {
			return counter(stats) >= threshold
		}
	}

	tasksCompleted := func(s entity.UserStats) int64 { return s.TotalTasksCompleted }
	projectsCreated := func(s entity.UserStats) int64 { return s.TotalProjectsCreated }
	projectsCompleted := func(s entity.UserStats) int64 { return s.TotalProjectsCompleted }
	longestStreak := func(s entity.UserStats) int64 { return int64(s.LongestStreak) }
	teamMembers := func(s entity.UserStats) int64 { return s.TotalTeamMembers }
	earlyBirdTasks := func(s entity.UserStats) int64 { return s.EarlyBirdTasks }
	nightOwlTasks := func(s entity.UserStats) int64 { return s.NightOwlTasks }

	return NewCatalog(
		Badge{
			ID:          "first_task",
			Name:        "Getting Started",
			Description: "Complete your first task",
			Icon:        "badge-1",
			XPReward:    50,
			Condition:   atLeast(tasksCompleted, 1),
		},
		Badge{
			ID:          "ten_tasks",
			Name:        "Task Master",
			Description: "Complete 10 tasks",
			Icon:        "badge-2",
			XPReward:    100,
			Condition:   atLeast(tasksCompleted, 10),
		},
		Badge{
			ID:          "fifty_tasks",
			Name:        "Productivity Pro",
			Description: "Complete 50 tasks",
			Icon:        "badge-3",
			XPReward:    250,
			Condition:   atLeast(tasksCompleted, 50),
		},
		Badge{
			ID:          "hundred_tasks",
			Name:        "Task Champion",
			Description: "Complete 100 tasks",
			Icon:        "badge-4",
			XPReward:    500,
			Condition:   atLeast(tasksCompleted, 100),
		},
		Badge{
			ID:          "first_project",
			Name:        "Project Starter",
			Description: "Create your first project",
			Icon:        "badge-5",
			XPReward:    75,
			Condition:   atLeast(projectsCreated, 1),
		},
		Badge{
			ID:          "five_projects",
			Name:        "Project Manager",
			Description: "Create 5 projects",
			Icon:        "badge-6",
			XPReward:    200,
			Condition:   atLeast(projectsCreated, 5),
		},
		Badge{
			ID:          "project_completed",
			Name:        "Goal Getter",
			Description: "Complete your first project",
			Icon:        "badge-7",
			XPReward:    150,
			Condition:   atLeast(projectsCompleted, 1),
		},
		Badge{
			ID:          "streak_7",
			Name:        "Consistency King",
			Description: "Maintain a 7-day streak",
			Icon:        "badge-8",
			XPReward:    150,
			Condition:   atLeast(longestStreak, 7),
		},
		Badge{
			ID:          "streak_30",
			Name:        "Unstoppable",
			Description: "Maintain a 30-day streak",
			Icon:        "badge-9",
			XPReward:    500,
			Condition:   atLeast(longestStreak, 30),
		},
		Badge{
			ID:          "team_player",
			Name:        "Team Player",
			Description: "Add your first team member",
			Icon:        "badge-10",
			XPReward:    75,
			Condition:   atLeast(teamMembers, 1),
		},
		Badge{
			ID:          "early_bird",
			Name:        "Early Bird",
			Description: "Complete a task before 8 AM",
			Icon:        "badge-11",
			XPReward:    50,
			Condition:   atLeast(earlyBirdTasks, 1),
		},
		Badge{
			ID:          "night_owl",
			Name:        "Night Owl",
			Description: "Complete a task after 11 PM",
			Icon:        "badge-12",
			XPReward:    50,
			Condition:   atLeast(nightOwlTasks, 1),
		},
	)
}

// Evaluate returns the badges newly satisfied by the given snapshot, in
// declaration order. Badges already in the snapshot's unlocked set are never
// re-checked.
func (c *Catalog) Evaluate(stats entity.UserStats) []Badge {
	var unlocked []Badge
	for _, b := range c.badges {
		if stats.HasBadge(b.ID) {
			continue
		}

		if b.Condition(stats) {
			unlocked = append(unlocked, b)
		}
	}

	return unlocked
}

func (c *Catalog) All() []Badge {
	return c.badges
}

func (c *Catalog) Get(id string) (Badge, bool) {
	b, ok := c.byID[id]
	return b, ok
}
