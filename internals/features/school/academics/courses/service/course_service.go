package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/academics/courses/dto"
	"gradebook_backend/internals/features/school/academics/courses/model"
	repo "gradebook_backend/internals/features/school/academics/courses/repository"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

func duplicateCode(code string) string {
	return fmt.Sprintf("course code %q already exists", code)
}

func (s *CourseService) Create(ctx context.Context, p helperAuth.Principal, req dto.CourseRequest) (dto.CourseResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpCourseCreate); err != nil {
		return dto.CourseResponse{}, err
	}
	req.Normalize()

	m := model.CourseModel{Name: req.Name, Code: req.Code, Credits: req.Credits}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return helper.AsConflict(tx.Create(&m).Error, duplicateCode(req.Code))
	})
	if err != nil {
		return dto.CourseResponse{}, err
	}
	return dto.FromModel(m), nil
}

func (s *CourseService) Get(ctx context.Context, p helperAuth.Principal, id int64) (dto.CourseResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpCourseRead); err != nil {
		return dto.CourseResponse{}, err
	}
	var out dto.CourseResponse
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

func (s *CourseService) List(ctx context.Context, p helperAuth.Principal, page helper.Params) ([]dto.CourseResponse, int64, error) {
	if err := helperAuth.Require(p, helperAuth.OpCourseRead); err != nil {
		return nil, 0, err
	}
	var (
		out   []dto.CourseResponse
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

func (s *CourseService) Update(ctx context.Context, p helperAuth.Principal, id int64, req dto.CourseRequest) (dto.CourseResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpCourseUpdate); err != nil {
		return dto.CourseResponse{}, err
	}
	req.Normalize()

	var out dto.CourseResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		m.Name, m.Code, m.Credits = req.Name, req.Code, req.Credits
		if err := tx.Save(m).Error; err != nil {
			return helper.AsConflict(err, duplicateCode(req.Code))
		}
		out = dto.FromModel(*m)
		return nil
	})
	return out, err
}

// Delete drops the course and its memberships. A course that already has
// grades or attendance is kept.
func (s *CourseService) Delete(ctx context.Context, p helperAuth.Principal, id int64) error {
	if err := helperAuth.Require(p, helperAuth.OpCourseDelete); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.MustFind(tx, id); err != nil {
			return err
		}
		n, err := repo.CountRecords(tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("course %d has %d grade or attendance records", id, n))
		}
		if err := repo.DeleteMemberships(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.CourseModel{}, id).Error
	})
}
