package domain

import (
	"context"

	"github.com/fairytale-lab/backend/internal/domain/statistic"
	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/pkg/errorx"
	"github.com/fairytale-lab/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type statisticDomain struct {
	leaderboard statistic.Leaderboard
}

func NewStatisticDomain(leaderboard statistic.Leaderboard) *statisticDomain {
	return &statisticDomain{leaderboard: leaderboard}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	cfg := xcontext.Configs(ctx).Rewards
	if req.Limit == 0 {
		req.Limit = cfg.LeaderboardDefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > cfg.LeaderboardMaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", cfg.LeaderboardMaxLimit)
	}

	entries, err := d.leaderboard.GetLeaderBoard(ctx, xcontext.RequestUserID(ctx), req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetLeaderboardResponse{Entries: entries}, nil
}
