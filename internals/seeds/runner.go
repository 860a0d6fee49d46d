package seeds

import (
	"context"

	"github.com/go-kit/log"
	"gorm.io/gorm"

	"gradebook_backend/internals/configs"
	users "gradebook_backend/internals/seeds/users/auth"
)

func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) error {
	logger = log.With(logger, "component", "seed")

	//* User
	if _, err := users.SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword, logger); err != nil {
		return err
	}
	return nil
}
