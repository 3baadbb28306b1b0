package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/internal/repository"
)

// SampleUserStats creates a new stats record in database with a randomized
// user id. The sample can be overwritten by non-zero fields of init.
//
// This function returns the sample stats.
func SampleUserStats(ctx context.Context, init *entity.UserStats) (entity.UserStats, error) {
	userStatsRepo := repository.NewUserStatsRepository()

	sample := &entity.UserStats{
		UserID:         uuid.NewString(),
		DisplayName:    uuid.NewString(),
		CurrentLevel:   1,
		UnlockedBadges: entity.Array[string]{},
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userStatsRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.Comparable() {
			if overwriteField.Len() > 0 {
				originValue.Field(i).Set(overwriteField)
			}
			continue
		}

		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
