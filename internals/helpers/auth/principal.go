package helper

import (
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/constants"
)

// Key locals yang diisi middleware AuthJWT
const LocPrincipal = "principal"

// Principal is the caller's identity, resolved once per request from the
// access token and handed to every service call.
type Principal struct {
	UserID int64
	Email  string
	Role   string
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID > 0 && constants.IsValidRole(p.Role)
}

// GetPrincipal reads the principal stored by the auth middleware.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	p, ok := c.Locals(LocPrincipal).(Principal)
	if !ok || !p.IsAuthenticated() {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return p, nil
}
