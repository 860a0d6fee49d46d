package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/constants"
	"gradebook_backend/internals/databases/dbtest"
	"gradebook_backend/internals/features/users/auth/dto"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

func TestLogin(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.User(t, db, "admin@sgm.com", "secret123", constants.RoleAdmin)
	svc := New(db, testSecret, time.Hour, nil)

	out, err := svc.Login(context.Background(), dto.LoginRequest{Email: " Admin@SGM.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, u.ID, out.User.ID)
	assert.Equal(t, constants.RoleAdmin, out.User.Role)

	claims, err := helperAuth.ParseAccessToken(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Principal().UserID)
	assert.WithinDuration(t, out.ExpiresAt, claims.Expiry(), time.Second)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "admin@sgm.com", Password: "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@sgm.com", Password: "secret123"})
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))
}

func TestChangePassword(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.User(t, db, "t@sgm.com", "secret123", constants.RoleTeacher)
	svc := New(db, testSecret, time.Hour, nil)
	p := helperAuth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
	ctx := context.Background()

	err := svc.ChangePassword(ctx, p, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "another1"})
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))

	require.NoError(t, svc.ChangePassword(ctx, p, dto.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "another1"}))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "t@sgm.com", Password: "secret123"})
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "t@sgm.com", Password: "another1"})
	assert.NoError(t, err)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.User(t, db, "s@sgm.com", "secret123", constants.RoleStudent)
	svc := New(db, testSecret, time.Hour, nil)
	ctx := context.Background()

	out, err := svc.Login(ctx, dto.LoginRequest{Email: "s@sgm.com", Password: "secret123"})
	require.NoError(t, err)
	p := helperAuth.Principal{UserID: out.User.ID, Email: out.User.Email, Role: out.User.Role}

	me, err := svc.Me(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "s@sgm.com", me.Email)

	require.NoError(t, svc.Logout(ctx, p, out.Token))
	revoked, err := helperAuth.IsBlacklisted(ctx, db, out.Token, testSecret)
	require.NoError(t, err)
	assert.True(t, revoked)

	// logging out twice keeps a single row
	require.NoError(t, svc.Logout(ctx, p, out.Token))
	assert.Equal(t, int64(1), dbtest.Count(t, db, "token_blacklist", ""))

	err = svc.Logout(ctx, p, "garbage")
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))
}

func TestMeUnknownUser(t *testing.T) {
	db := dbtest.Open(t)
	svc := New(db, testSecret, time.Hour, nil)

	_, err := svc.Me(context.Background(), dbtest.Admin)
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))
	_, err = svc.Me(context.Background(), helperAuth.Principal{})
	assert.Equal(t, fiber.StatusUnauthorized, dbtest.Status(err))
}
