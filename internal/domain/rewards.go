package domain

import (
	"context"
	"errors"

	"github.com/fairytale-lab/backend/internal/domain/badge"
	"github.com/fairytale-lab/backend/internal/domain/progression"
	"github.com/fairytale-lab/backend/internal/domain/statistic"
	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/internal/repository"
	"github.com/fairytale-lab/backend/pkg/clock"
	"github.com/fairytale-lab/backend/pkg/errorx"
	"github.com/fairytale-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Base XP awarded per domain event.
const (
	TaskCompletedXP    = 10
	TaskCreatedXP      = 5
	ProjectCreatedXP   = 50
	ProjectCompletedXP = 100
	InviteMemberXP     = 25
)

// A task finished before earlyBirdHour counts as an early-bird task, one
// finished at nightOwlHour or later counts as a night-owl task. The two are
// mutually exclusive for a single event.
const (
	earlyBirdHour = 8
	nightOwlHour  = 23
)

type RewardsDomain interface {
	CompleteTask(context.Context, *model.CompleteTaskRequest) (*model.CompleteTaskResponse, error)
	CreateTask(context.Context, *model.CreateTaskRequest) (*model.CreateTaskResponse, error)
	CreateProject(context.Context, *model.CreateProjectRequest) (*model.CreateProjectResponse, error)
	CompleteProject(context.Context, *model.CompleteProjectRequest) (*model.CompleteProjectResponse, error)
	AddTeamMember(context.Context, *model.AddTeamMemberRequest) (*model.AddTeamMemberResponse, error)
	RecordActivity(context.Context, *model.RecordActivityRequest) (*model.RecordActivityResponse, error)
	GetMyStats(context.Context, *model.GetMyStatsRequest) (*model.GetMyStatsResponse, error)
	GetBadges(context.Context, *model.GetBadgesRequest) (*model.GetBadgesResponse, error)
}

type rewardsDomain struct {
	userStatsRepo repository.UserStatsRepository
	badgeCatalog  *badge.Catalog
	leaderboard   statistic.Leaderboard
	clock         clock.Clock
}

func NewRewardsDomain(
	userStatsRepo repository.UserStatsRepository,
	badgeCatalog *badge.Catalog,
	leaderboard statistic.Leaderboard,
	clock clock.Clock,
) *rewardsDomain {
	return &rewardsDomain{
		userStatsRepo: userStatsRepo,
		badgeCatalog:  badgeCatalog,
		leaderboard:   leaderboard,
		clock:         clock,
	}
}

func (d *rewardsDomain) CompleteTask(
	ctx context.Context, req *model.CompleteTaskRequest,
) (*model.CompleteTaskResponse, error) {
	counters := map[string]int64{"total_tasks_completed": 1}

	hour := d.clock.Hour()
	if hour < earlyBirdHour {
		counters["early_bird_tasks"] = 1
	} else if hour >= nightOwlHour {
		counters["night_owl_tasks"] = 1
	}

	reward, err := d.applyEvent(ctx, counters, TaskCompletedXP, false)
	if err != nil {
		return nil, err
	}

	return &model.CompleteTaskResponse{Reward: *reward}, nil
}

func (d *rewardsDomain) CreateTask(
	ctx context.Context, req *model.CreateTaskRequest,
) (*model.CreateTaskResponse, error) {
	counters := map[string]int64{"total_tasks_created": 1}
	reward, err := d.applyEvent(ctx, counters, TaskCreatedXP, false)
	if err != nil {
		return nil, err
	}

	return &model.CreateTaskResponse{Reward: *reward}, nil
}

func (d *rewardsDomain) CreateProject(
	ctx context.Context, req *model.CreateProjectRequest,
) (*model.CreateProjectResponse, error) {
	counters := map[string]int64{"total_projects_created": 1}
	reward, err := d.applyEvent(ctx, counters, ProjectCreatedXP, false)
	if err != nil {
		return nil, err
	}

	return &model.CreateProjectResponse{Reward: *reward}, nil
}

func (d *rewardsDomain) CompleteProject(
	ctx context.Context, req *model.CompleteProjectRequest,
) (*model.CompleteProjectResponse, error) {
	counters := map[string]int64{"total_projects_completed": 1}
	reward, err := d.applyEvent(ctx, counters, ProjectCompletedXP, false)
	if err != nil {
		return nil, err
	}

	return &model.CompleteProjectResponse{Reward: *reward}, nil
}

func (d *rewardsDomain) AddTeamMember(
	ctx context.Context, req *model.AddTeamMemberRequest,
) (*model.AddTeamMemberResponse, error) {
	counters := map[string]int64{"total_team_members": 1}
	reward, err := d.applyEvent(ctx, counters, InviteMemberXP, false)
	if err != nil {
		return nil, err
	}

	return &model.AddTeamMemberResponse{Reward: *reward}, nil
}

func (d *rewardsDomain) RecordActivity(
	ctx context.Context, req *model.RecordActivityRequest,
) (*model.RecordActivityResponse, error) {
	reward, err := d.applyEvent(ctx, nil, 0, true)
	if err != nil {
		return nil, err
	}

	return &model.RecordActivityResponse{
		Streak:   reward.CurrentStreak,
		XPEarned: reward.XPEarned,
	}, nil
}

func (d *rewardsDomain) GetMyStats(
	ctx context.Context, req *model.GetMyStatsRequest,
) (*model.GetMyStatsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	stats, err := d.getOrCreateStats(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user stats: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMyStatsResponse{UserStats: model.ConvertUserStats(stats)}, nil
}

func (d *rewardsDomain) GetBadges(
	ctx context.Context, req *model.GetBadgesRequest,
) (*model.GetBadgesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	stats, err := d.getOrCreateStats(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user stats: %v", err)
		return nil, errorx.Unknown
	}

	badges := []model.Badge{}
	for _, b := range d.badgeCatalog.All() {
		badges = append(badges, model.Badge{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			XPReward:    b.XPReward,
			Unlocked:    stats.HasBadge(b.ID),
		})
	}

	return &model.GetBadgesResponse{Badges: badges}, nil
}

// applyEvent runs one domain event as a single logical unit: counter
// increments, base XP, streak advance, badge evaluation and badge rewards all
// commit together or not at all.
func (d *rewardsDomain) applyEvent(
	ctx context.Context, counters map[string]int64, baseXP int64, withStreak bool,
) (*model.Reward, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	stats, err := d.getOrCreateStats(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user stats: %v", err)
		return nil, errorx.Unknown
	}

	if len(counters) > 0 {
		if err := d.userStatsRepo.IncreaseCounters(ctx, userID, counters); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot increase counters: %v", err)
			return nil, errorx.Unknown
		}
	}

	xpDelta := baseXP
	if withStreak {
		update := progression.AdvanceStreak(
			stats.CurrentStreak, stats.LongestStreak, stats.LastActiveDate, d.clock.Today())
		if update.Advanced {
			err := d.userStatsRepo.UpdateStreak(
				ctx, userID, update.CurrentStreak, update.LongestStreak, d.clock.Today())
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot update streak: %v", err)
				return nil, errorx.Unknown
			}

			xpDelta += update.XPBonus
		}
	}

	if xpDelta > 0 {
		newTotal := stats.TotalXP + xpDelta
		err := d.userStatsRepo.AddXP(ctx, userID, xpDelta, progression.LevelForXP(newTotal))
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot add xp: %v", err)
			return nil, errorx.Unknown
		}
	}

	// Badges are checked against the post-increment snapshot, so the event
	// that crossed a threshold unlocks its badge immediately.
	snapshot, err := d.userStatsRepo.Get(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload user stats: %v", err)
		return nil, errorx.Unknown
	}

	newBadges := d.badgeCatalog.Evaluate(*snapshot)
	if len(newBadges) > 0 {
		union := append(entity.Array[string]{}, snapshot.UnlockedBadges...)
		runningTotal := snapshot.TotalXP
		for _, b := range newBadges {
			union = append(union, b.ID)
			runningTotal += b.XPReward
			xpDelta += b.XPReward

			err := d.userStatsRepo.AddXP(ctx, userID, b.XPReward, progression.LevelForXP(runningTotal))
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot add badge reward xp: %v", err)
				return nil, errorx.Unknown
			}
		}

		if err := d.userStatsRepo.UpdateBadges(ctx, userID, union); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update badges: %v", err)
			return nil, errorx.Unknown
		}
	}

	final, err := d.userStatsRepo.Get(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load final user stats: %v", err)
		return nil, errorx.Unknown
	}

	if err := verifyStats(final); err != nil {
		xcontext.Logger(ctx).Errorf("Inconsistent stats for user %s: %v", userID, err)
		return nil, errorx.New(errorx.Internal, "Inconsistent user stats")
	}

	xcontext.WithCommitDBTransaction(ctx)

	if xpDelta > 0 {
		d.leaderboard.ChangeXPLeaderboard(ctx, xpDelta, userID)
	}

	unlocked := []model.Badge{}
	for _, b := range newBadges {
		unlocked = append(unlocked, model.Badge{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			XPReward:    b.XPReward,
			Unlocked:    true,
		})
	}

	return &model.Reward{
		XPEarned:       xpDelta,
		TotalXP:        final.TotalXP,
		CurrentLevel:   final.CurrentLevel,
		CurrentStreak:  final.CurrentStreak,
		UnlockedBadges: unlocked,
	}, nil
}

func (d *rewardsDomain) getOrCreateStats(
	ctx context.Context, userID string,
) (*entity.UserStats, error) {
	stats, err := d.userStatsRepo.Get(ctx, userID)
	if err == nil {
		return stats, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newStats := &entity.UserStats{
		UserID:         userID,
		TotalXP:        0,
		CurrentLevel:   1,
		UnlockedBadges: entity.Array[string]{},
	}

	if err := d.userStatsRepo.Create(ctx, newStats); err != nil {
		return nil, err
	}

	return newStats, nil
}

// verifyStats checks the invariants that must hold after every update. A
// failure signals a bug, not a transient condition.
func verifyStats(stats *entity.UserStats) error {
	if stats.TotalXP < 0 {
		return errors.New("total xp is negative")
	}

	if stats.LongestStreak < stats.CurrentStreak {
		return errors.New("longest streak is less than current streak")
	}

	if got := progression.LevelForXP(stats.TotalXP); stats.CurrentLevel != got {
		return errors.New("current level doesn't match total xp")
	}

	return nil
}
