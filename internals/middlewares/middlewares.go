package middlewares

import (
	"time"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"gradebook_backend/internals/configs"
	reqLogger "gradebook_backend/internals/middlewares/logger"
)

const requestTimeout = 5 * time.Second

// SetupMiddlewares mounts the app-wide chain, outermost first.
func SetupMiddlewares(app *fiber.App, cfg configs.AppConfig, logger log.Logger) {
	app.Use(RecoveryMiddleware(logger))
	app.Use(RequestContext(requestTimeout))
	app.Use(reqLogger.LoggerMiddleware(logger))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
