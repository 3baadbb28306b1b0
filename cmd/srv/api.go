package main

import (
	"net/http"

	"github.com/fairytale-lab/backend/internal/middleware"
	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/pkg/authenticator"
	"github.com/fairytale-lab/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}
	if err := s.loadRedis(s.baseContext(ct.Context)); err != nil {
		return err
	}
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: corsHandler.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting api server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](s.configs.Auth)

	// Public API, the leaderboard only uses the requesting user to surface
	// their own position when authenticated.
	publicRouter := s.router.Branch()
	optionalVerifier := middleware.NewAuthVerifier(tokenEngine).WithOptional()
	publicRouter.Before(optionalVerifier.Middleware())
	{
		router.GET(publicRouter, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
	}

	// These following APIs need authentication with an access token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier(tokenEngine)
	authRouter.Before(authVerifier.Middleware())
	{
		router.GET(authRouter, "/getMyStats", s.rewardsDomain.GetMyStats)
		router.GET(authRouter, "/getBadges", s.rewardsDomain.GetBadges)

		router.POST(authRouter, "/completeTask", s.rewardsDomain.CompleteTask)
		router.POST(authRouter, "/createTask", s.rewardsDomain.CreateTask)
		router.POST(authRouter, "/createProject", s.rewardsDomain.CreateProject)
		router.POST(authRouter, "/completeProject", s.rewardsDomain.CompleteProject)
		router.POST(authRouter, "/addTeamMember", s.rewardsDomain.AddTeamMember)
		router.POST(authRouter, "/recordActivity", s.rewardsDomain.RecordActivity)
	}
}
