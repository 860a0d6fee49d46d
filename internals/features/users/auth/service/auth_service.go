package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/users/auth/dto"
	authHelper "gradebook_backend/internals/features/users/auth/helper"
	authRepo "gradebook_backend/internals/features/users/auth/repository"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

/* ==========================
   Const & Types
========================== */

const accessTTLDefault = 10 * time.Hour

type Service struct {
	DB        *gorm.DB
	JWTSecret string
	AccessTTL time.Duration
	Logger    log.Logger
	Now       func() time.Time
}

func New(db *gorm.DB, jwtSecret string, ttl time.Duration, logger log.Logger) *Service {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Service{
		DB:        db,
		JWTSecret: jwtSecret,
		AccessTTL: ttl,
		Logger:    log.With(logger, "service", "auth"),
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

var errBadCredentials = fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")

// ========================== LOGIN ==========================
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	req.Normalize()

	user, err := authRepo.FindUserByEmail(s.DB.WithContext(ctx), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, errBadCredentials
		}
		return dto.LoginResponse{}, err
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		level.Info(s.Logger).Log("msg", "login rejected", "email", req.Email)
		return dto.LoginResponse{}, errBadCredentials
	}

	p := helperAuth.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}
	token, exp, err := helperAuth.IssueAccessToken(s.JWTSecret, p, s.AccessTTL, s.Now())
	if err != nil {
		return dto.LoginResponse{}, fiber.NewError(fiber.StatusInternalServerError, "failed to issue token")
	}

	level.Info(s.Logger).Log("msg", "login", "user_id", user.ID, "role", user.Role)
	return dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: exp,
		User:      dto.ToUserResponse(*user),
	}, nil
}

// ========================== LOGOUT ==========================
// Logout blacklists the raw access token until its own expiry.
func (s *Service) Logout(ctx context.Context, p helperAuth.Principal, rawToken string) error {
	if err := helperAuth.Require(p, helperAuth.OpAccountSelf); err != nil {
		return err
	}
	claims, err := helperAuth.ParseAccessToken(s.JWTSecret, rawToken)
	if err != nil {
		return err
	}
	exp := claims.Expiry()
	if exp.IsZero() {
		exp = s.Now().Add(s.AccessTTL)
	}
	if err := helperAuth.Add(ctx, s.DB, rawToken, s.JWTSecret, exp); err != nil {
		return err
	}
	level.Info(s.Logger).Log("msg", "logout", "user_id", p.UserID)
	return nil
}

// ========================== ME ==========================
func (s *Service) Me(ctx context.Context, p helperAuth.Principal) (dto.UserResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpAccountSelf); err != nil {
		return dto.UserResponse{}, err
	}
	user, err := authRepo.FindUserByID(s.DB.WithContext(ctx), p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, fiber.NewError(fiber.StatusUnauthorized, "User not found")
		}
		return dto.UserResponse{}, err
	}
	return dto.ToUserResponse(*user), nil
}
