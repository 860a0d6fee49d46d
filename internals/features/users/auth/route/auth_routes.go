// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/configs"
	controller "gradebook_backend/internals/features/users/auth/controller"
	"gradebook_backend/internals/features/users/auth/service"
	rateLimiter "gradebook_backend/internals/middlewares"
)

func newController(db *gorm.DB, cfg configs.AppConfig, logger log.Logger) *controller.AuthController {
	svc := service.New(db, cfg.JWTSecret, cfg.JWTTTL, logger)
	return controller.NewAuthController(svc, validator.New(validator.WithRequiredStructEnabled()))
}

// AuthPublicRoutes mounts the unauthenticated endpoints.
// Base: /api/auth
func AuthPublicRoutes(api fiber.Router, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	ctl := newController(db, cfg, logger)

	auth := api.Group("/auth")
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
}

// AuthProtectedRoutes expects api to already carry the JWT middleware.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB, cfg configs.AppConfig, logger log.Logger) {
	ctl := newController(db, cfg, logger)

	api.Post("/auth/logout", ctl.Logout)

	users := api.Group("/users")
	users.Get("/me", ctl.Me)
	users.Patch("/change-password", ctl.ChangePassword)
}
