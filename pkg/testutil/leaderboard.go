package testutil

import (
	"context"

	"github.com/fairytale-lab/backend/internal/model"
)

type MockLeaderboard struct {
	GetLeaderBoardFunc      func(ctx context.Context, requestUserID string, limit int) ([]model.LeaderboardEntry, error)
	ChangeXPLeaderboardFunc func(ctx context.Context, delta int64, userID string)
}

func (m *MockLeaderboard) GetLeaderBoard(
	ctx context.Context, requestUserID string, limit int,
) ([]model.LeaderboardEntry, error) {
	if m.GetLeaderBoardFunc != nil {
		return m.GetLeaderBoardFunc(ctx, requestUserID, limit)
	}

	return nil, nil
}

func (m *MockLeaderboard) ChangeXPLeaderboard(ctx context.Context, delta int64, userID string) {
	if m.ChangeXPLeaderboardFunc != nil {
		m.ChangeXPLeaderboardFunc(ctx, delta, userID)
	}
}
