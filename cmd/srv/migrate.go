package main

import (
	"github.com/fairytale-lab/backend/internal/entity"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}

	ctx := s.baseContext(ct.Context)
	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
