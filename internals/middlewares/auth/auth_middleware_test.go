package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gradebook_backend/internals/constants"
	"gradebook_backend/internals/databases/dbtest"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

const secret = "mw-secret"

func newApp(t *testing.T, db *gorm.DB) func(string) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: secret, DB: db}))
	app.Get("/who", func(c *fiber.Ctx) error {
		p, err := helperAuth.GetPrincipal(c)
		if err != nil {
			return err
		}
		return c.SendString(p.Role)
	})

	do := func(authz string) (int, string) {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		if authz != "" {
			req.Header.Set(fiber.HeaderAuthorization, authz)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}
	return do
}

func TestAuthJWT(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.User(t, db, "t@sgm.com", "secret123", constants.RoleTeacher)
	do := newApp(t, db)
	code := func(authz string) int {
		c, _ := do(authz)
		return c
	}

	p := helperAuth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
	tok, _, err := helperAuth.IssueAccessToken(secret, p, time.Hour, time.Now())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, code("Bearer "+tok))
	assert.Equal(t, http.StatusUnauthorized, code(""))
	assert.Equal(t, http.StatusUnauthorized, code("Bearer nonsense"))
	assert.Equal(t, http.StatusUnauthorized, code("Basic "+tok))

	foreign, _, err := helperAuth.IssueAccessToken("someone-else", p, time.Hour, time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, code("Bearer "+foreign))

	bad, _, err := helperAuth.IssueAccessToken(secret, helperAuth.Principal{UserID: u.ID, Role: "ROOT"}, time.Hour, time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, code("Bearer "+bad))
}

func TestAuthJWTFollowsStoredAccount(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.User(t, db, "t@sgm.com", "secret123", constants.RoleTeacher)
	do := newApp(t, db)

	tok, _, err := helperAuth.IssueAccessToken(secret, helperAuth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}, time.Hour, time.Now())
	require.NoError(t, err)

	status, role := do("Bearer " + tok)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, constants.RoleTeacher, role)

	// role changes apply to tokens already issued
	require.NoError(t, db.Table("users").Where("id = ?", u.ID).Update("role", constants.RoleStudent).Error)
	_, role = do("Bearer " + tok)
	assert.Equal(t, constants.RoleStudent, role)

	require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", u.ID).Error)
	status, body := do("Bearer " + tok)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "User not found")
}

func TestAuthJWTRejectsRevokedToken(t *testing.T) {
	db := dbtest.Open(t)
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: secret, DB: db}))
	app.Get("/who", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	u := dbtest.User(t, db, "t@sgm.com", "secret123", constants.RoleTeacher)
	p := helperAuth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
	tok, exp, err := helperAuth.IssueAccessToken(secret, p, time.Hour, time.Now())
	require.NoError(t, err)

	call := func() int {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusNoContent, call())
	require.NoError(t, helperAuth.Add(context.Background(), db, tok, secret, exp))
	assert.Equal(t, http.StatusUnauthorized, call())
}

func TestAuthJWTNeedsSecret(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{Secret: "  "}) })
}
