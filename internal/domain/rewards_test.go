package domain

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/fairytale-lab/backend/internal/domain/badge"
	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/internal/repository"
	"github.com/fairytale-lab/backend/pkg/errorx"
	"github.com/fairytale-lab/backend/pkg/testutil"
	"github.com/fairytale-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestRewardsDomain(
	repo repository.UserStatsRepository, lb *testutil.MockLeaderboard, at time.Time,
) *rewardsDomain {
	if lb == nil {
		lb = &testutil.MockLeaderboard{}
	}

	return NewRewardsDomain(repo, badge.NewDefaultCatalog(), lb, &testutil.MockClock{Current: at})
}

func Test_rewardsDomain_CompleteTask_FirstTaskEarlyMorning(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")

	var leaderboardDelta int64
	lb := &testutil.MockLeaderboard{
		ChangeXPLeaderboardFunc: func(ctx context.Context, delta int64, userID string) {
			leaderboardDelta = delta
		},
	}

	at := time.Date(2024, time.March, 10, 7, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), lb, at)

	resp, err := d.CompleteTask(ctx, &model.CompleteTaskRequest{})
	require.NoError(t, err)

	// 10 base + 50 first_task + 50 early_bird.
	require.Equal(t, int64(110), resp.XPEarned)
	require.Equal(t, int64(110), resp.TotalXP)
	require.Equal(t, 2, resp.CurrentLevel)
	require.Equal(t, 0, resp.CurrentStreak)
	require.Len(t, resp.UnlockedBadges, 2)
	require.Equal(t, "first_task", resp.UnlockedBadges[0].ID)
	require.Equal(t, "early_bird", resp.UnlockedBadges[1].ID)
	require.Equal(t, int64(110), leaderboardDelta)

	stats, err := repository.NewUserStatsRepository().Get(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.TotalTasksCompleted)
	require.Equal(t, int64(1), stats.EarlyBirdTasks)
	require.Equal(t, int64(0), stats.NightOwlTasks)
	require.Equal(t, entity.Array[string]{"first_task", "early_bird"}, stats.UnlockedBadges)
}

func Test_rewardsDomain_CompleteTask_LateNight(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")

	at := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, at)

	resp, err := d.CompleteTask(ctx, &model.CompleteTaskRequest{})
	require.NoError(t, err)

	// 10 base + 50 first_task + 50 night_owl.
	require.Equal(t, int64(110), resp.XPEarned)

	stats, err := repository.NewUserStatsRepository().Get(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.NightOwlTasks)
	require.Equal(t, int64(0), stats.EarlyBirdTasks)
}

func Test_rewardsDomain_CompleteTask_Midday(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")

	at := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, at)

	resp, err := d.CompleteTask(ctx, &model.CompleteTaskRequest{})
	require.NoError(t, err)

	// 10 base + 50 first_task, no time-of-day badge.
	require.Equal(t, int64(60), resp.XPEarned)
	require.Len(t, resp.UnlockedBadges, 1)
	require.Equal(t, "first_task", resp.UnlockedBadges[0].ID)
}

func Test_rewardsDomain_CompleteTask_DoesNotAdvanceStreak(t *testing.T) {
	ctx := testutil.MockContext()

	lastActive := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	sample, err := testutil.SampleUserStats(ctx, &entity.UserStats{
		CurrentStreak:  3,
		LongestStreak:  3,
		LastActiveDate: sql.NullTime{Valid: true, Time: lastActive},
	})
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, sample.UserID)

	at := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, at)

	resp, err := d.CompleteTask(ctx, &model.CompleteTaskRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.CurrentStreak)

	stats, err := repository.NewUserStatsRepository().Get(ctx, sample.UserID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.CurrentStreak)
	require.Equal(t, lastActive.Unix(), stats.LastActiveDate.Time.Unix())
}

func Test_rewardsDomain_CreateProject_FifthUnlocksManager(t *testing.T) {
	ctx := testutil.MockContext()

	sample, err := testutil.SampleUserStats(ctx, &entity.UserStats{
		TotalXP:              1000,
		CurrentLevel:         5,
		TotalProjectsCreated: 4,
		UnlockedBadges:       entity.Array[string]{"first_project"},
	})
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, sample.UserID)

	at := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, at)

	resp, err := d.CreateProject(ctx, &model.CreateProjectRequest{})
	require.NoError(t, err)

	// 50 base + 200 five_projects.
	require.Equal(t, int64(250), resp.XPEarned)
	require.Equal(t, int64(1250), resp.TotalXP)
	require.Len(t, resp.UnlockedBadges, 1)
	require.Equal(t, "five_projects", resp.UnlockedBadges[0].ID)

	stats, err := repository.NewUserStatsRepository().Get(ctx, sample.UserID)
	require.NoError(t, err)
	require.Equal(t, entity.Array[string]{"first_project", "five_projects"}, stats.UnlockedBadges)
}

func Test_rewardsDomain_Unauthenticated(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, time.Now())

	_, err := d.CompleteTask(ctx, &model.CompleteTaskRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	_, err = d.GetMyStats(ctx, &model.GetMyStatsRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_rewardsDomain_CompleteTask_RollsBackOnFailure(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")

	_, err := testutil.SampleUserStats(ctx, &entity.UserStats{UserID: "user1"})
	require.NoError(t, err)

	repo := testutil.NewMockUserStatsRepository()
	repo.AddXPFunc = func(ctx context.Context, userID string, xp int64, level int) error {
		return errors.New("storage down")
	}

	at := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repo, nil, at)

	_, err = d.CompleteTask(ctx, &model.CompleteTaskRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.Unknown, err)

	// The counter increment must have been rolled back with the rest.
	stats, err := repository.NewUserStatsRepository().Get(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, int64(0), stats.TotalTasksCompleted)
	require.Equal(t, int64(0), stats.TotalXP)
}

func Test_rewardsDomain_RecordActivity_FirstDay(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")

	at := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, at)

	resp, err := d.RecordActivity(ctx, &model.RecordActivityRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Streak)
	require.Equal(t, int64(5), resp.XPEarned)

	// Same day again earns nothing.
	resp, err = d.RecordActivity(ctx, &model.RecordActivityRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Streak)
	require.Equal(t, int64(0), resp.XPEarned)
}

func Test_rewardsDomain_RecordActivity_SeventhDay(t *testing.T) {
	ctx := testutil.MockContext()

	sample, err := testutil.SampleUserStats(ctx, &entity.UserStats{
		TotalXP:       500,
		CurrentLevel:  4,
		CurrentStreak: 6,
		LongestStreak: 6,
		LastActiveDate: sql.NullTime{
			Valid: true,
			Time:  time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, sample.UserID)

	at := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, at)

	resp, err := d.RecordActivity(ctx, &model.RecordActivityRequest{})
	require.NoError(t, err)
	require.Equal(t, 7, resp.Streak)

	// 5 daily + 25 weekly + 150 streak_7 badge.
	require.Equal(t, int64(180), resp.XPEarned)

	stats, err := repository.NewUserStatsRepository().Get(ctx, sample.UserID)
	require.NoError(t, err)
	require.Equal(t, 7, stats.LongestStreak)
	require.True(t, stats.HasBadge("streak_7"))
}

func Test_rewardsDomain_GetMyStats_LazyCreate(t *testing.T) {
	ctx := testutil.MockContextWithUserID("newcomer")

	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, time.Now())

	resp, err := d.GetMyStats(ctx, &model.GetMyStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, "newcomer", resp.UserID)
	require.Equal(t, int64(0), resp.TotalXP)
	require.Equal(t, 1, resp.CurrentLevel)
	require.Equal(t, int64(0), resp.XPWithinLevel)
	require.Equal(t, int64(100), resp.XPForNextLevel)
	require.Empty(t, resp.UnlockedBadges)

	// The record is now persisted.
	stats, err := repository.NewUserStatsRepository().Get(ctx, "newcomer")
	require.NoError(t, err)
	require.Equal(t, 1, stats.CurrentLevel)
}

func Test_rewardsDomain_GetBadges(t *testing.T) {
	ctx := testutil.MockContext()

	sample, err := testutil.SampleUserStats(ctx, &entity.UserStats{
		UnlockedBadges: entity.Array[string]{"first_task"},
	})
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, sample.UserID)

	d := newTestRewardsDomain(repository.NewUserStatsRepository(), nil, time.Now())

	resp, err := d.GetBadges(ctx, &model.GetBadgesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Badges, 12)
	require.Equal(t, "first_task", resp.Badges[0].ID)
	require.True(t, resp.Badges[0].Unlocked)
	require.False(t, resp.Badges[1].Unlocked)
}
