package entity

import (
	"context"

	"github.com/fairytale-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(&UserStats{})
}
