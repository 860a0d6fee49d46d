// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "gradebook_backend/internals/features/users/auth/repository"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret string
	// DB enables the blacklist and account checks; nil trusts the claims.
	DB     *gorm.DB
	Logger log.Logger
}

// AuthJWT verifies the bearer token, rejects blacklisted tokens and tokens
// of deleted accounts, and stores the caller's Principal plus the raw token
// in locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}
	logger := o.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, err := helperAuth.ParseAccessToken(secret, raw)
		if err != nil {
			return err
		}

		if o.DB != nil {
			black, err := helperAuth.IsBlacklisted(c.UserContext(), o.DB, raw, secret)
			if err != nil {
				level.Error(logger).Log("msg", "blacklist lookup failed", "err", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			if black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		p := claims.Principal()
		if !p.IsAuthenticated() {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Akun harus masih ada; role dan email diambil dari baris users.
		if o.DB != nil {
			user, err := authRepo.FindUserByID(o.DB.WithContext(c.UserContext()), p.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusUnauthorized, "User not found")
				}
				level.Error(logger).Log("msg", "user lookup failed", "user_id", p.UserID, "err", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			p = helperAuth.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}
			if !p.IsAuthenticated() {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid account role")
			}
		}
		c.Locals(helperAuth.LocPrincipal, p)
		helper.SetRawAccessToken(c, raw)
		return c.Next()
	}
}
