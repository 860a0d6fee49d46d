package service

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradebook_backend/internals/constants"
	branchRepo "gradebook_backend/internals/features/school/academics/branches/repository"
	"gradebook_backend/internals/features/school/teachers/dto"
	"gradebook_backend/internals/features/school/teachers/model"
	repo "gradebook_backend/internals/features/school/teachers/repository"
	authHelper "gradebook_backend/internals/features/users/auth/helper"
	authRepo "gradebook_backend/internals/features/users/auth/repository"
	userModel "gradebook_backend/internals/features/users/user/model"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type TeacherService struct {
	DB     *gorm.DB
	Logger log.Logger
}

func NewTeacherService(db *gorm.DB, logger log.Logger) *TeacherService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &TeacherService{DB: db, Logger: log.With(logger, "service", "teacher")}
}

func emailConflict(email string) error {
	return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("email %q is already in use", email))
}

func (s *TeacherService) Create(ctx context.Context, p helperAuth.Principal, req dto.TeacherCreateRequest) (dto.TeacherResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpTeacherCreate); err != nil {
		return dto.TeacherResponse{}, err
	}
	req.Normalize()

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return dto.TeacherResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	var out dto.TeacherResponse
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		branch, err := branchRepo.MustFind(tx, req.BranchID)
		if err != nil {
			return err
		}
		taken, err := authRepo.EmailTaken(tx, req.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return emailConflict(req.Email)
		}

		user := userModel.UserModel{Email: req.Email, Password: hash, Role: constants.RoleTeacher}
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return helper.AsConflict(err, fmt.Sprintf("email %q is already in use", req.Email))
		}

		m := model.TeacherModel{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			BranchID:  branch.ID,
			UserID:    user.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return helper.AsConflict(err, fmt.Sprintf("email %q is already in use", req.Email))
		}
		m.Branch = *branch
		out = dto.FromModel(m)
		return nil
	})
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	level.Info(s.Logger).Log("msg", "teacher created", "teacher_id", out.ID)
	return out, nil
}

func (s *TeacherService) Get(ctx context.Context, p helperAuth.Principal, id int64) (dto.TeacherResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpTeacherRead); err != nil {
		return dto.TeacherResponse{}, err
	}
	var out dto.TeacherResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		out = dto.FromModel(*m)
		return nil
	})
	return out, err
}

func (s *TeacherService) List(ctx context.Context, p helperAuth.Principal, page helper.Params) ([]dto.TeacherResponse, int64, error) {
	if err := helperAuth.Require(p, helperAuth.OpTeacherRead); err != nil {
		return nil, 0, err
	}
	var (
		out   []dto.TeacherResponse
		total int64
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, n, err := repo.List(tx, page)
		if err != nil {
			return err
		}
		out, total = dto.FromModels(rows), n
		return nil
	})
	return out, total, err
}

// Update replaces the mutable fields and keeps the account email in step
// with the teacher email.
func (s *TeacherService) Update(ctx context.Context, p helperAuth.Principal, id int64, req dto.TeacherUpdateRequest) (dto.TeacherResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpTeacherUpdate); err != nil {
		return dto.TeacherResponse{}, err
	}
	req.Normalize()

	var out dto.TeacherResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		branch, err := branchRepo.MustFind(tx, req.BranchID)
		if err != nil {
			return err
		}

		if req.Email != m.Email {
			taken, err := authRepo.EmailTaken(tx, req.Email, m.UserID)
			if err != nil {
				return err
			}
			if taken {
				return emailConflict(req.Email)
			}
			if err := authRepo.UpdateUserEmail(tx, m.UserID, req.Email); err != nil {
				return helper.AsConflict(err, fmt.Sprintf("email %q is already in use", req.Email))
			}
		}

		m.FirstName = req.FirstName
		m.LastName = req.LastName
		m.Email = req.Email
		m.BranchID = branch.ID
		m.Branch = *branch
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return helper.AsConflict(err, fmt.Sprintf("email %q is already in use", req.Email))
		}
		out = dto.FromModel(*m)
		return nil
	})
	return out, err
}

// Delete removes the teacher and its account.
func (s *TeacherService) Delete(ctx context.Context, p helperAuth.Principal, id int64) error {
	if err := helperAuth.Require(p, helperAuth.OpTeacherDelete); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&model.TeacherModel{}, m.ID).Error; err != nil {
			return err
		}
		return authRepo.DeleteUser(tx, m.UserID)
	})
}
