package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRepo "gradebook_backend/internals/features/school/academics/courses/repository"
	"gradebook_backend/internals/features/school/attendance/dto"
	"gradebook_backend/internals/features/school/attendance/model"
	repo "gradebook_backend/internals/features/school/attendance/repository"
	studentRepo "gradebook_backend/internals/features/school/students/repository"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
	"gradebook_backend/internals/helpers/dbtime"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// Mark sets the status of (student, course, date), creating the record on
// first use. Marking the same day again overwrites the status.
func (s *AttendanceService) Mark(ctx context.Context, p helperAuth.Principal, req dto.AttendanceRequest) (dto.AttendanceResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpAttendanceMark); err != nil {
		return dto.AttendanceResponse{}, err
	}
	req.Normalize()
	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return dto.AttendanceResponse{}, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	var out dto.AttendanceResponse
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.FindByKey(tx, req.StudentID, req.CourseID, date)
		if err != nil {
			return err
		}
		if m == nil {
			if _, err := studentRepo.MustFind(tx, req.StudentID); err != nil {
				return err
			}
			if _, err := courseRepo.MustFind(tx, req.CourseID); err != nil {
				return err
			}
			m = &model.AttendanceModel{StudentID: req.StudentID, CourseID: req.CourseID, Date: date}
		}
		m.Status = req.Status
		if err := repo.Save(tx, m); err != nil {
			return helper.AsConflict(err, "attendance was marked concurrently, retry")
		}
		out = dto.FromModel(*m)
		return nil
	})
	return out, err
}

// GetForStudent lists the pair's records by date. Unknown ids yield an
// empty list.
func (s *AttendanceService) GetForStudent(ctx context.Context, p helperAuth.Principal, studentID, courseID int64) ([]dto.AttendanceResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpAttendanceRead); err != nil {
		return nil, err
	}
	var out []dto.AttendanceResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := repo.ListForStudentCourse(tx, studentID, courseID)
		if err != nil {
			return err
		}
		out = dto.FromModels(rows)
		return nil
	})
	return out, err
}
