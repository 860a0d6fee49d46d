package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradebook_backend/internals/constants"
	branchRepo "gradebook_backend/internals/features/school/academics/branches/repository"
	"gradebook_backend/internals/features/school/students/dto"
	"gradebook_backend/internals/features/school/students/model"
	repo "gradebook_backend/internals/features/school/students/repository"
	authHelper "gradebook_backend/internals/features/users/auth/helper"
	authRepo "gradebook_backend/internals/features/users/auth/repository"
	userModel "gradebook_backend/internals/features/users/user/model"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type StudentService struct {
	DB *gorm.DB
	// SearchEnabled gates SearchStudents; when false search always
	// returns an empty list.
	SearchEnabled bool
	Logger        log.Logger
}

func NewStudentService(db *gorm.DB, searchEnabled bool, logger log.Logger) *StudentService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &StudentService{DB: db, SearchEnabled: searchEnabled, Logger: log.With(logger, "service", "student")}
}

func emailInUse(email string) error {
	return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("email %q is already in use", email))
}

func usnConflict(err error, usn string) error {
	return helper.AsConflict(err, fmt.Sprintf("student with usn %q or its email already exists", usn))
}

// view loads the student's courses and builds the response.
func view(tx *gorm.DB, m *model.StudentModel) (dto.StudentResponse, error) {
	courses, err := repo.CoursesOf(tx, []int64{m.ID})
	if err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.FromModel(*m, courses[m.ID]), nil
}

func views(tx *gorm.DB, rows []model.StudentModel) ([]dto.StudentResponse, error) {
	courses, err := repo.CoursesOf(tx, repo.IDs(rows))
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rows, courses), nil
}

/* ============================ CREATE ============================ */

// Create stores the student together with its STUDENT account.
func (s *StudentService) Create(ctx context.Context, p helperAuth.Principal, req dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpStudentCreate); err != nil {
		return dto.StudentResponse{}, err
	}
	req.Normalize()

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return dto.StudentResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	var out dto.StudentResponse
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
			return emailInUse(req.Email)
		}

		user := userModel.UserModel{Email: req.Email, Password: hash, Role: constants.RoleStudent}
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return helper.AsConflict(err, fmt.Sprintf("email %q is already in use", req.Email))
		}

		m := model.StudentModel{
			USN:       req.USN,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Year:      req.Year,
			Section:   req.Section,
			BranchID:  branch.ID,
			UserID:    user.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return usnConflict(err, req.USN)
		}
		m.Branch = *branch
		out = dto.FromModel(m, nil)
		return nil
	})
	if err != nil {
		return dto.StudentResponse{}, err
	}
	level.Info(s.Logger).Log("msg", "student created", "student_id", out.ID, "usn", out.USN)
	return out, nil
}

/* ============================ READ ============================ */

func (s *StudentService) Get(ctx context.Context, p helperAuth.Principal, id int64) (dto.StudentResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpStudentRead); err != nil {
		return dto.StudentResponse{}, err
	}
	var out dto.StudentResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		out, err = view(tx, m)
		return err
	})
	return out, err
}

func (s *StudentService) List(ctx context.Context, p helperAuth.Principal, page helper.Params) ([]dto.StudentResponse, int64, error) {
	if err := helperAuth.Require(p, helperAuth.OpStudentRead); err != nil {
		return nil, 0, err
	}
	var (
		out   []dto.StudentResponse
		total int64
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, n, err := repo.List(tx, page)
		if err != nil {
			return err
		}
		total = n
		out, err = views(tx, rows)
		return err
	})
	return out, total, err
}

// Search returns an empty list unless search is enabled.
func (s *StudentService) Search(ctx context.Context, p helperAuth.Principal, query string) ([]dto.StudentResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpStudentSearch); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if !s.SearchEnabled || query == "" {
		return []dto.StudentResponse{}, nil
	}
	var out []dto.StudentResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := repo.Search(tx, query)
		if err != nil {
			return err
		}
		out, err = views(tx, rows)
		return err
	})
	return out, err
}

/* ============================ UPDATE ============================ */

// Update replaces the mutable fields. The account email follows the
// student email.
func (s *StudentService) Update(ctx context.Context, p helperAuth.Principal, id int64, req dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpStudentUpdate); err != nil {
		return dto.StudentResponse{}, err
	}
	req.Normalize()

	var out dto.StudentResponse
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
				return emailInUse(req.Email)
			}
			if err := authRepo.UpdateUserEmail(tx, m.UserID, req.Email); err != nil {
				return helper.AsConflict(err, fmt.Sprintf("email %q is already in use", req.Email))
			}
		}

		m.USN = req.USN
		m.FirstName = req.FirstName
		m.LastName = req.LastName
		m.Email = req.Email
		m.Year = req.Year
		m.Section = req.Section
		m.BranchID = branch.ID
		m.Branch = *branch
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return usnConflict(err, req.USN)
		}
		out, err = view(tx, m)
		return err
	})
	return out, err
}

/* ============================ DELETE ============================ */

// Delete removes the student with everything it owns: memberships,
// grades, attendance and the account.
func (s *StudentService) Delete(ctx context.Context, p helperAuth.Principal, id int64) error {
	if err := helperAuth.Require(p, helperAuth.OpStudentDelete); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteDependents(tx, m.ID); err != nil {
			return err
		}
		if err := tx.Delete(&model.StudentModel{}, m.ID).Error; err != nil {
			return err
		}
		return authRepo.DeleteUser(tx, m.UserID)
	})
	if err != nil {
		return err
	}
	level.Info(s.Logger).Log("msg", "student deleted", "student_id", id)
	return nil
}
