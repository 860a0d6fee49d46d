package repository

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/teachers/model"
	helper "gradebook_backend/internals/helpers"
)

func MustFind(tx *gorm.DB, id int64) (*model.TeacherModel, error) {
	var m model.TeacherModel
	if err := tx.Preload("Branch").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("teacher %d not found", id))
		}
		return nil, err
	}
	return &m, nil
}

func List(tx *gorm.DB, p helper.Params) ([]model.TeacherModel, int64, error) {
	var (
		rows  []model.TeacherModel
		total int64
	)
	if err := tx.Model(&model.TeacherModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := tx.Preload("Branch").Order("last_name ASC").Order("first_name ASC").Order("id ASC")
	if !p.All {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
