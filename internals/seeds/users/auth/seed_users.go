package user

import (
	"context"
	"errors"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gorm.io/gorm"

	"gradebook_backend/internals/constants"
	authHelper "gradebook_backend/internals/features/users/auth/helper"
	authRepo "gradebook_backend/internals/features/users/auth/repository"
	"gradebook_backend/internals/features/users/user/model"
)

// SeedAdmin creates the bootstrap ADMIN account unless a user with that
// email already exists. It reports whether a row was inserted.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, password string, logger log.Logger) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, errors.New("admin email and password are required")
	}

	created := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := authRepo.FindUserByEmail(tx, email)
		if err == nil {
			level.Info(logger).Log("msg", "admin already present, skipped", "email", email)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := authHelper.HashPassword(password)
		if err != nil {
			return err
		}
		admin := model.UserModel{Email: email, Password: hashed, Role: constants.RoleAdmin}
		if err := authRepo.CreateUser(tx, &admin); err != nil {
			return err
		}
		created = true
		level.Info(logger).Log("msg", "admin seeded", "email", email, "user_id", admin.ID)
		return nil
	})
	return created, err
}
