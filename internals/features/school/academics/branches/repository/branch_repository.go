package repository

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/academics/branches/model"
	helper "gradebook_backend/internals/helpers"
)

// MustFind loads a branch or fails with 404.
func MustFind(tx *gorm.DB, id int64) (*model.BranchModel, error) {
	var m model.BranchModel
	if err := tx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("branch %d not found", id))
		}
		return nil, err
	}
	return &m, nil
}

func List(tx *gorm.DB, p helper.Params) ([]model.BranchModel, int64, error) {
	var (
		rows  []model.BranchModel
		total int64
	)
	q := tx.Model(&model.BranchModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("name ASC").Order("id ASC")
	if !p.All {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountReferences counts students and teachers attached to the branch.
func CountReferences(tx *gorm.DB, id int64) (int64, error) {
	var students, teachers int64
	if err := tx.Table("students").Where("branch_id = ?", id).Count(&students).Error; err != nil {
		return 0, err
	}
	if err := tx.Table("teachers").Where("branch_id = ?", id).Count(&teachers).Error; err != nil {
		return 0, err
	}
	return students + teachers, nil
}
