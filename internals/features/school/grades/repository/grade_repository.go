package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradebook_backend/internals/features/school/grades/model"
)

// FindByKey returns nil, nil when the (student, course, semester) row
// does not exist.
func FindByKey(tx *gorm.DB, studentID, courseID int64, semester int) (*model.GradeModel, error) {
	var m model.GradeModel
	err := tx.Where("student_id = ? AND course_id = ? AND semester = ?", studentID, courseID, semester).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func Create(tx *gorm.DB, m *model.GradeModel) error {
	return tx.Omit(clause.Associations).Create(m).Error
}

// Save writes every column, so nil marks become NULL.
func Save(tx *gorm.DB, m *model.GradeModel) error {
	return tx.Omit(clause.Associations).Save(m).Error
}
