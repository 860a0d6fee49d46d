package repository

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/academics/courses/model"
	helper "gradebook_backend/internals/helpers"
)

// MustFind loads a course or fails with 404.
func MustFind(tx *gorm.DB, id int64) (*model.CourseModel, error) {
	var m model.CourseModel
	if err := tx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("course %d not found", id))
		}
		return nil, err
	}
	return &m, nil
}

func List(tx *gorm.DB, p helper.Params) ([]model.CourseModel, int64, error) {
	var (
		rows  []model.CourseModel
		total int64
	)
	q := tx.Model(&model.CourseModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("code ASC")
	if !p.All {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountRecords counts grade and attendance rows recorded for the course.
func CountRecords(tx *gorm.DB, id int64) (int64, error) {
	var grades, attendance int64
	if err := tx.Table("grades").Where("course_id = ?", id).Count(&grades).Error; err != nil {
		return 0, err
	}
	if err := tx.Table("attendances").Where("course_id = ?", id).Count(&attendance).Error; err != nil {
		return 0, err
	}
	return grades + attendance, nil
}

func DeleteMemberships(tx *gorm.DB, id int64) error {
	return tx.Exec("DELETE FROM student_courses WHERE course_id = ?", id).Error
}
