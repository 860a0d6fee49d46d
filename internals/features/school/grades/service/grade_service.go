package service

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRepo "gradebook_backend/internals/features/school/academics/courses/repository"
	"gradebook_backend/internals/features/school/grades/dto"
	"gradebook_backend/internals/features/school/grades/model"
	repo "gradebook_backend/internals/features/school/grades/repository"
	studentRepo "gradebook_backend/internals/features/school/students/repository"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type GradeService struct {
	DB     *gorm.DB
	Logger log.Logger
}

func NewGradeService(db *gorm.DB, logger log.Logger) *GradeService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &GradeService{DB: db, Logger: log.With(logger, "service", "grade")}
}

func marksOf(m *model.GradeModel) Marks {
	return Marks{
		Mse1: m.Mse1, Mse2: m.Mse2,
		Task1: m.Task1, Task2: m.Task2, Task3: m.Task3,
		RecordMarks: m.RecordMarks, ConductionMarks: m.ConductionMarks, MseLab: m.MseLab,
		SeeScore: m.SeeScore,
	}
}

// toResponse attaches the computed IA totals.
func toResponse(m *model.GradeModel) dto.GradeResponse {
	t := Aggregate(marksOf(m))
	return dto.GradeResponse{
		ID:              m.ID,
		StudentID:       m.StudentID,
		CourseID:        m.CourseID,
		Semester:        m.Semester,
		Mse1:            m.Mse1,
		Mse2:            m.Mse2,
		Task1:           m.Task1,
		Task2:           m.Task2,
		Task3:           m.Task3,
		RecordMarks:     m.RecordMarks,
		ConductionMarks: m.ConductionMarks,
		MseLab:          m.MseLab,
		SeeScore:        m.SeeScore,
		IATotal:         t.IA,
		ReducedIATotal:  t.Reduced,
	}
}

func notFound(studentID, courseID int64, semester int) error {
	return fiber.NewError(fiber.StatusNotFound,
		fmt.Sprintf("no grades for student %d, course %d, semester %d", studentID, courseID, semester))
}

// Upsert creates the (student, course, semester) row on first use and
// otherwise replaces all nine marks.
func (s *GradeService) Upsert(ctx context.Context, p helperAuth.Principal, studentID, courseID int64, semester int, req dto.GradeRequest) (dto.GradeResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpGradeWrite); err != nil {
		return dto.GradeResponse{}, err
	}

	var out dto.GradeResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.FindByKey(tx, studentID, courseID, semester)
		if err != nil {
			return err
		}
		if m == nil {
			if _, err := studentRepo.MustFind(tx, studentID); err != nil {
				return err
			}
			if _, err := courseRepo.MustFind(tx, courseID); err != nil {
				return err
			}
			m = &model.GradeModel{StudentID: studentID, CourseID: courseID, Semester: semester}
			req.Apply(m)
			if err := repo.Create(tx, m); err != nil {
				return helper.AsConflict(err, "grade row was created concurrently, retry")
			}
		} else {
			req.Apply(m)
			if err := repo.Save(tx, m); err != nil {
				return err
			}
		}
		out = toResponse(m)
		return nil
	})
	return out, err
}

func (s *GradeService) Get(ctx context.Context, p helperAuth.Principal, studentID, courseID int64, semester int) (dto.GradeResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpGradeRead); err != nil {
		return dto.GradeResponse{}, err
	}
	out, _, err := s.load(ctx, studentID, courseID, semester)
	return out, err
}

// Final returns the same view as Get. The final score is only logged.
func (s *GradeService) Final(ctx context.Context, p helperAuth.Principal, studentID, courseID int64, semester int) (dto.GradeResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpGradeRead); err != nil {
		return dto.GradeResponse{}, err
	}
	out, marks, err := s.load(ctx, studentID, courseID, semester)
	if err != nil {
		return dto.GradeResponse{}, err
	}
	level.Info(s.Logger).Log(
		"msg", "final score",
		"student_id", studentID,
		"course_id", courseID,
		"semester", semester,
		"score", FinalScore(marks),
	)
	return out, nil
}

func (s *GradeService) load(ctx context.Context, studentID, courseID int64, semester int) (dto.GradeResponse, Marks, error) {
	var (
		out   dto.GradeResponse
		marks Marks
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.FindByKey(tx, studentID, courseID, semester)
		if err != nil {
			return err
		}
		if m == nil {
			return notFound(studentID, courseID, semester)
		}
		out, marks = toResponse(m), marksOf(m)
		return nil
	})
	return out, marks, err
}
