// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/configs"
	authMiddleware "gradebook_backend/internals/middlewares/auth"
	routeDetails "gradebook_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	startTime = time.Now()
	logger = log.With(logger, "component", "route")

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	level.Info(logger).Log("msg", "mounting public auth routes")
	routeDetails.AuthPublicRoutes(api, db, cfg, logger)

	// ===================== PRIVATE (JWT) =====================
	level.Info(logger).Log("msg", "mounting private routes")
	private := api.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret: cfg.JWTSecret,
			DB:     db,
			Logger: logger,
		}),
	)

	routeDetails.AuthUserRoutes(private, db, cfg, logger)
	routeDetails.SchoolRoutes(private, db, cfg, logger)
}
