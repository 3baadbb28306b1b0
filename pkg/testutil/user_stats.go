package testutil

import (
	"context"
	"time"

	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/internal/repository"
)

// MockUserStatsRepository overrides selected methods of the real repository,
// useful to inject storage failures. Unset funcs fall through to the real
// implementation against the context database.
type MockUserStatsRepository struct {
	real repository.UserStatsRepository

	GetFunc              func(ctx context.Context, userID string) (*entity.UserStats, error)
	CreateFunc           func(ctx context.Context, stats *entity.UserStats) error
	IncreaseCountersFunc func(ctx context.Context, userID string, counters map[string]int64) error
	AddXPFunc            func(ctx context.Context, userID string, xp int64, level int) error
	UpdateStreakFunc     func(ctx context.Context, userID string, current, longest int, lastActive time.Time) error
	UpdateBadgesFunc     func(ctx context.Context, userID string, badges entity.Array[string]) error
	GetTopByXPFunc       func(ctx context.Context, limit int) ([]entity.UserStats, error)
	GetByIDsFunc         func(ctx context.Context, userIDs []string) ([]entity.UserStats, error)
}

func NewMockUserStatsRepository() *MockUserStatsRepository {
	return &MockUserStatsRepository{real: repository.NewUserStatsRepository()}
}

func (m *MockUserStatsRepository) Get(ctx context.Context, userID string) (*entity.UserStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}

	return m.real.Get(ctx, userID)
}

func (m *MockUserStatsRepository) Create(ctx context.Context, stats *entity.UserStats) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, stats)
	}

	return m.real.Create(ctx, stats)
}

func (m *MockUserStatsRepository) IncreaseCounters(
	ctx context.Context, userID string, counters map[string]int64,
) error {
	if m.IncreaseCountersFunc != nil {
		return m.IncreaseCountersFunc(ctx, userID, counters)
	}

	return m.real.IncreaseCounters(ctx, userID, counters)
}

func (m *MockUserStatsRepository) AddXP(
	ctx context.Context, userID string, xp int64, level int,
) error {
	if m.AddXPFunc != nil {
		return m.AddXPFunc(ctx, userID, xp, level)
	}

	return m.real.AddXP(ctx, userID, xp, level)
}

func (m *MockUserStatsRepository) UpdateStreak(
	ctx context.Context, userID string, current, longest int, lastActive time.Time,
) error {
	if m.UpdateStreakFunc != nil {
		return m.UpdateStreakFunc(ctx, userID, current, longest, lastActive)
	}

	return m.real.UpdateStreak(ctx, userID, current, longest, lastActive)
}

func (m *MockUserStatsRepository) UpdateBadges(
	ctx context.Context, userID string, badges entity.Array[string],
) error {
	if m.UpdateBadgesFunc != nil {
		return m.UpdateBadgesFunc(ctx, userID, badges)
	}

	return m.real.UpdateBadges(ctx, userID, badges)
}

func (m *MockUserStatsRepository) GetTopByXP(
	ctx context.Context, limit int,
) ([]entity.UserStats, error) {
	if m.GetTopByXPFunc != nil {
		return m.GetTopByXPFunc(ctx, limit)
	}

	return m.real.GetTopByXP(ctx, limit)
}

func (m *MockUserStatsRepository) GetByIDs(
	ctx context.Context, userIDs []string,
) ([]entity.UserStats, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, userIDs)
	}

	return m.real.GetByIDs(ctx, userIDs)
}
