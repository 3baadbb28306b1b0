package main

import (
	"context"
	"net/http"

	"github.com/fairytale-lab/backend/config"
	"github.com/fairytale-lab/backend/internal/domain"
	"github.com/fairytale-lab/backend/internal/domain/badge"
	"github.com/fairytale-lab/backend/internal/domain/statistic"
	"github.com/fairytale-lab/backend/internal/repository"
	"github.com/fairytale-lab/backend/pkg/clock"
	"github.com/fairytale-lab/backend/pkg/logger"
	"github.com/fairytale-lab/backend/pkg/router"
	"github.com/fairytale-lab/backend/pkg/xcontext"
	"github.com/fairytale-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userStatsRepo repository.UserStatsRepository

	badgeCatalog *badge.Catalog
	leaderboard  statistic.Leaderboard

	rewardsDomain   domain.RewardsDomain
	statisticDomain domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) error {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		return err
	}

	s.configs = cfg
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.LevelFromName(s.configs.LogLevel))
}

func (s *srv) loadDatabase() error {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})

	return err
}

func (s *srv) loadRedis(ctx context.Context) error {
	var err error
	s.redisClient, err = xredis.NewClient(ctx)
	return err
}

func (s *srv) loadRepos() {
	s.userStatsRepo = repository.NewUserStatsRepository()
}

func (s *srv) loadDomains() {
	s.badgeCatalog = badge.NewDefaultCatalog()
	s.leaderboard = statistic.New(s.userStatsRepo, s.redisClient)

	s.rewardsDomain = domain.NewRewardsDomain(
		s.userStatsRepo, s.badgeCatalog, s.leaderboard, clock.New())
	s.statisticDomain = domain.NewStatisticDomain(s.leaderboard)
}

// baseContext carries configuration, logger and database for code running
// outside of a request, for example migrations.
func (s *srv) baseContext(ctx context.Context) context.Context {
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	return ctx
}
