package statistic

import (
	"context"
	"sort"

	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/internal/repository"
	"github.com/fairytale-lab/backend/pkg/xcontext"
	"github.com/fairytale-lab/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

const xpLeaderboardRedisKey = "leaderboard:xp"

type Leaderboard interface {
	// GetLeaderBoard returns the ranked top-limit view for the given
	// requesting user. It never fails hard; when storage is unavailable
	// it ranks the demo pool alone.
	GetLeaderBoard(ctx context.Context, requestUserID string, limit int) ([]model.LeaderboardEntry, error)

	// ChangeXPLeaderboard adjusts a user's score in the cached ranking.
	// Errors are logged, the caller's event must not fail because of the
	// cache.
	ChangeXPLeaderboard(ctx context.Context, delta int64, userID string)
}

type leaderboard struct {
	userStatsRepo repository.UserStatsRepository
	redisClient   xredis.Client
}

func New(
	userStatsRepo repository.UserStatsRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{userStatsRepo: userStatsRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context, requestUserID string, limit int,
) ([]model.LeaderboardEntry, error) {
	real, err := l.realEntries(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load real users for leaderboard: %v", err)
		real = nil
	}

	return MergeAndRank(DemoPool(), real, requestUserID, limit), nil
}

func (l *leaderboard) ChangeXPLeaderboard(ctx context.Context, delta int64, userID string) {
	ok, err := l.redisClient.Exist(ctx, xpLeaderboardRedisKey)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return
	}

	// If the key didn't exist in redis, no need to update. It will be
	// backfilled from database on the next read.
	if !ok {
		return
	}

	if err := l.redisClient.ZIncrBy(ctx, xpLeaderboardRedisKey, delta, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}
}

// realEntries loads real users ordered by XP, preferring the redis sorted
// set and falling back to a direct database read.
func (l *leaderboard) realEntries(ctx context.Context) ([]model.LeaderboardEntry, error) {
	fetchLimit := xcontext.Configs(ctx).Rewards.LeaderboardFetchLimit

	entries, err := l.realEntriesFromRedis(ctx, fetchLimit)
	if err == nil {
		return entries, nil
	}

	xcontext.Logger(ctx).Warnf("Cannot read leaderboard from redis: %v", err)

	stats, err := l.userStatsRepo.GetTopByXP(ctx, fetchLimit)
	if err != nil {
		return nil, err
	}

	return convertEntries(stats), nil
}

func (l *leaderboard) realEntriesFromRedis(
	ctx context.Context, fetchLimit int,
) ([]model.LeaderboardEntry, error) {
	ok, err := l.redisClient.Exist(ctx, xpLeaderboardRedisKey)
	if err != nil {
		return nil, err
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, fetchLimit); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, xpLeaderboardRedisKey, 0, fetchLimit)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	userIDs := make([]string, 0, len(results))
	for _, z := range results {
		userIDs = append(userIDs, z.Member.(string))
	}

	stats, err := l.userStatsRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	// Keep the redis ordering; the database rows only hydrate the display
	// fields. XP shown is the authoritative database value.
	statsByID := make(map[string]entity.UserStats, len(stats))
	for _, s := range stats {
		statsByID[s.UserID] = s
	}

	entries := []model.LeaderboardEntry{}
	for _, id := range userIDs {
		s, ok := statsByID[id]
		if !ok {
			continue
		}

		entries = append(entries, convertEntry(s))
	}

	return entries, nil
}

func (l *leaderboard) loadLeaderboardFromDB(ctx context.Context, fetchLimit int) error {
	stats, err := l.userStatsRepo.GetTopByXP(ctx, fetchLimit)
	if err != nil {
		return err
	}

	for _, s := range stats {
		err := l.redisClient.ZAdd(ctx, xpLeaderboardRedisKey, redis.Z{
			Member: s.UserID,
			Score:  float64(s.TotalXP),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// MergeAndRank unions the demo pool with real user entries and produces a
// dense 1-based ranking. A real user colliding with a demo identity replaces
// the demo entry. Ordering is by TotalXP descending with a stable tie-break:
// ties keep the input order, demo pool first.
//
// The result is truncated to limit, except that the requesting user is
// always included; when their rank falls beyond limit their entry is
// appended with its true rank, so the result holds at most limit+1 entries.
func MergeAndRank(
	demo, real []model.LeaderboardEntry, requestUserID string, limit int,
) []model.LeaderboardEntry {
	realIDs := make(map[string]bool, len(real))
	for _, e := range real {
		realIDs[e.UserID] = true
	}

	merged := make([]model.LeaderboardEntry, 0, len(demo)+len(real))
	for _, e := range demo {
		if realIDs[e.UserID] {
			continue
		}
		merged = append(merged, e)
	}
	merged = append(merged, real...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].TotalXP > merged[j].TotalXP
	})

	for i := range merged {
		merged[i].Rank = i + 1
	}

	if limit < 0 || limit >= len(merged) {
		return merged
	}

	result := append([]model.LeaderboardEntry{}, merged[:limit]...)
	for _, e := range merged[limit:] {
		if e.UserID != "" && e.UserID == requestUserID {
			result = append(result, e)
			break
		}
	}

	return result
}

func convertEntries(stats []entity.UserStats) []model.LeaderboardEntry {
	entries := []model.LeaderboardEntry{}
	for _, s := range stats {
		entries = append(entries, convertEntry(s))
	}

	return entries
}

func convertEntry(s entity.UserStats) model.LeaderboardEntry {
	displayName := s.DisplayName
	if displayName == "" {
		displayName = "User"
	}

	return model.LeaderboardEntry{
		UserID:              s.UserID,
		DisplayName:         displayName,
		TotalXP:             s.TotalXP,
		CurrentLevel:        s.CurrentLevel,
		TotalTasksCompleted: s.TotalTasksCompleted,
		LongestStreak:       s.LongestStreak,
		IsDemo:              false,
	}
}
