package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserStatsRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserStats, error)
	Create(ctx context.Context, stats *entity.UserStats) error
	IncreaseCounters(ctx context.Context, userID string, counters map[string]int64) error
	AddXP(ctx context.Context, userID string, xp int64, level int) error
	UpdateStreak(ctx context.Context, userID string, current, longest int, lastActive time.Time) error
	UpdateBadges(ctx context.Context, userID string, badges entity.Array[string]) error
	GetTopByXP(ctx context.Context, limit int) ([]entity.UserStats, error)
	GetByIDs(ctx context.Context, userIDs []string) ([]entity.UserStats, error)
}

type userStatsRepository struct{}

func NewUserStatsRepository() *userStatsRepository {
	return &userStatsRepository{}
}

func (r *userStatsRepository) Get(ctx context.Context, userID string) (*entity.UserStats, error) {
	var result entity.UserStats
	err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userStatsRepository) Create(ctx context.Context, stats *entity.UserStats) error {
	return xcontext.DB(ctx).Create(stats).Error
}

// IncreaseCounters atomically adds the given deltas to counter columns. Keys
// are column names.
func (r *userStatsRepository) IncreaseCounters(
	ctx context.Context, userID string, counters map[string]int64,
) error {
	updateMap := make(map[string]any, len(counters))
	for column, delta := range counters {
		updateMap[column] = gorm.Expr(column+"+?", delta)
	}

	return r.update(ctx, userID, updateMap)
}

func (r *userStatsRepository) AddXP(
	ctx context.Context, userID string, xp int64, level int,
) error {
	return r.update(ctx, userID, map[string]any{
		"total_xp":      gorm.Expr("total_xp+?", xp),
		"current_level": level,
	})
}

func (r *userStatsRepository) UpdateStreak(
	ctx context.Context, userID string, current, longest int, lastActive time.Time,
) error {
	return r.update(ctx, userID, map[string]any{
		"current_streak":   current,
		"longest_streak":   longest,
		"last_active_date": lastActive,
	})
}

// UpdateBadges overwrites the badge set with a recombined union, so a
// concurrent writer that already recorded a badge is never lost.
func (r *userStatsRepository) UpdateBadges(
	ctx context.Context, userID string, badges entity.Array[string],
) error {
	return r.update(ctx, userID, map[string]any{"unlocked_badges": badges})
}

func (r *userStatsRepository) GetTopByXP(
	ctx context.Context, limit int,
) ([]entity.UserStats, error) {
	var result []entity.UserStats
	err := xcontext.DB(ctx).
		Order("total_xp DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userStatsRepository) GetByIDs(
	ctx context.Context, userIDs []string,
) ([]entity.UserStats, error) {
	var result []entity.UserStats
	err := xcontext.DB(ctx).Where("user_id IN ?", userIDs).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userStatsRepository) update(
	ctx context.Context, userID string, updateMap map[string]any,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserStats{}).
		Where("user_id=?", userID).
		Updates(updateMap)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
