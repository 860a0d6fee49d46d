package repository

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradebook_backend/internals/features/school/attendance/model"
	"gradebook_backend/internals/helpers/dbtime"
)

// FindByKey returns nil, nil when nothing was marked for that day.
func FindByKey(tx *gorm.DB, studentID, courseID int64, date datatypes.Date) (*model.AttendanceModel, error) {
	var m model.AttendanceModel
	err := tx.Where("student_id = ? AND course_id = ? AND date = ?", studentID, courseID, dbtime.Normalize(date)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func Save(tx *gorm.DB, m *model.AttendanceModel) error {
	return tx.Omit(clause.Associations).Save(m).Error
}

// ListForStudentCourse returns the history of the pair, oldest day first.
func ListForStudentCourse(tx *gorm.DB, studentID, courseID int64) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := tx.Where("student_id = ? AND course_id = ?", studentID, courseID).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
