package details

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/configs"
	authRoute "gradebook_backend/internals/features/users/auth/route"
)

// AuthPublicRoutes: login, tanpa JWT.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	authRoute.AuthPublicRoutes(api, db, cfg, logger)
}

// AuthUserRoutes: logout, me, change-password (JWT).
func AuthUserRoutes(private fiber.Router, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	authRoute.AuthProtectedRoutes(private, db, cfg, logger)
}
