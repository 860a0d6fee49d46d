package service

import (
	"context"

	"gorm.io/gorm"

	courseDto "gradebook_backend/internals/features/school/academics/courses/dto"
	courseRepo "gradebook_backend/internals/features/school/academics/courses/repository"
	"gradebook_backend/internals/features/school/students/dto"
	repo "gradebook_backend/internals/features/school/students/repository"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

// Enroll adds the course to the student's set. Enrolling twice is a no-op.
func (s *StudentService) Enroll(ctx context.Context, p helperAuth.Principal, studentID, courseID int64) (dto.StudentResponse, error) {
	return s.changeMembership(ctx, p, studentID, courseID, repo.AddMembership)
}

// Unenroll removes the course from the student's set. Removing a course
// the student never had is a no-op.
func (s *StudentService) Unenroll(ctx context.Context, p helperAuth.Principal, studentID, courseID int64) (dto.StudentResponse, error) {
	return s.changeMembership(ctx, p, studentID, courseID, repo.RemoveMembership)
}

func (s *StudentService) changeMembership(
	ctx context.Context,
	p helperAuth.Principal,
	studentID, courseID int64,
	apply func(tx *gorm.DB, studentID, courseID int64) error,
) (dto.StudentResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpEnrollmentWrite); err != nil {
		return dto.StudentResponse{}, err
	}
	var out dto.StudentResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, studentID)
		if err != nil {
			return err
		}
		if _, err := courseRepo.MustFind(tx, courseID); err != nil {
			return err
		}
		if err := apply(tx, studentID, courseID); err != nil {
			return err
		}
		out, err = view(tx, m)
		return err
	})
	return out, err
}

// EnrolledCourses lists a student's courses ordered by code.
func (s *StudentService) EnrolledCourses(ctx context.Context, p helperAuth.Principal, studentID int64) ([]courseDto.CourseResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpEnrollmentRead); err != nil {
		return nil, err
	}
	var out []courseDto.CourseResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.MustFind(tx, studentID); err != nil {
			return err
		}
		rows, err := repo.EnrolledCourses(tx, studentID)
		if err != nil {
			return err
		}
		out = courseDto.FromModels(rows)
		return nil
	})
	return out, err
}

// CourseStudents lists the students enrolled in a course ordered by USN.
func (s *StudentService) CourseStudents(ctx context.Context, p helperAuth.Principal, courseID int64) ([]dto.StudentResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpCourseStudents); err != nil {
		return nil, err
	}
	var out []dto.StudentResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := courseRepo.MustFind(tx, courseID); err != nil {
			return err
		}
		rows, err := repo.CourseStudents(tx, courseID)
		if err != nil {
			return err
		}
		out, err = views(tx, rows)
		return err
	})
	return out, err
}
