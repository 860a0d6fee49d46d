package service

import (
	"context"
	"errors"

	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/users/auth/dto"
	authHelper "gradebook_backend/internals/features/users/auth/helper"
	authRepo "gradebook_backend/internals/features/users/auth/repository"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

// ========================== CHANGE PASSWORD ==========================
func (s *Service) ChangePassword(ctx context.Context, p helperAuth.Principal, req dto.ChangePasswordRequest) error {
	if err := helperAuth.Require(p, helperAuth.OpAccountSelf); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := authRepo.FindUserByID(tx, p.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "User not found")
			}
			return err
		}

		// Cek password lama
		if err := authHelper.CheckPasswordHash(user.Password, req.CurrentPassword); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Current password incorrect")
		}

		newHash, err := authHelper.HashPassword(req.NewPassword)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash new password")
		}
		if err := authRepo.UpdateUserPassword(tx, user.ID, newHash); err != nil {
			return err
		}

		level.Info(s.Logger).Log("msg", "password changed", "user_id", user.ID)
		return nil
	})
}
