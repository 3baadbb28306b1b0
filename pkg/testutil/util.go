package testutil

import (
	"context"
	"time"

	"github.com/fairytale-lab/backend/config"
	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/fairytale-lab/backend/pkg/logger"
	"github.com/fairytale-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env:      "testing",
		LogLevel: "error",
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		Rewards: config.RewardsConfigs{
			LeaderboardFetchLimit:   50,
			LeaderboardDefaultLimit: 10,
			LeaderboardMaxLimit:     50,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
