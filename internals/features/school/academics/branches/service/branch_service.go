package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradebook_backend/internals/features/school/academics/branches/dto"
	"gradebook_backend/internals/features/school/academics/branches/model"
	repo "gradebook_backend/internals/features/school/academics/branches/repository"
	helper "gradebook_backend/internals/helpers"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

type BranchService struct {
	DB *gorm.DB
}

func NewBranchService(db *gorm.DB) *BranchService {
	return &BranchService{DB: db}
}

func duplicateName(name string) string {
	return fmt.Sprintf("branch name %q already exists", name)
}

func (s *BranchService) Create(ctx context.Context, p helperAuth.Principal, req dto.BranchRequest) (dto.BranchResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpBranchCreate); err != nil {
		return dto.BranchResponse{}, err
	}
	req.Normalize()

	m := model.BranchModel{Name: req.Name}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return helper.AsConflict(tx.Create(&m).Error, duplicateName(req.Name))
	})
	if err != nil {
		return dto.BranchResponse{}, err
	}
	return dto.FromModel(m), nil
}

func (s *BranchService) Get(ctx context.Context, p helperAuth.Principal, id int64) (dto.BranchResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpBranchRead); err != nil {
		return dto.BranchResponse{}, err
	}
	var out dto.BranchResponse
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

func (s *BranchService) List(ctx context.Context, p helperAuth.Principal, page helper.Params) ([]dto.BranchResponse, int64, error) {
	if err := helperAuth.Require(p, helperAuth.OpBranchRead); err != nil {
		return nil, 0, err
	}
	var (
		out   []dto.BranchResponse
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

func (s *BranchService) Update(ctx context.Context, p helperAuth.Principal, id int64, req dto.BranchRequest) (dto.BranchResponse, error) {
	if err := helperAuth.Require(p, helperAuth.OpBranchUpdate); err != nil {
		return dto.BranchResponse{}, err
	}
	req.Normalize()

	var out dto.BranchResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.MustFind(tx, id)
		if err != nil {
			return err
		}
		m.Name = req.Name
		if err := tx.Save(m).Error; err != nil {
			return helper.AsConflict(err, duplicateName(req.Name))
		}
		out = dto.FromModel(*m)
		return nil
	})
	return out, err
}

// Delete refuses while students or teachers still point at the branch.
func (s *BranchService) Delete(ctx context.Context, p helperAuth.Principal, id int64) error {
	if err := helperAuth.Require(p, helperAuth.OpBranchDelete); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.MustFind(tx, id); err != nil {
			return err
		}
		n, err := repo.CountReferences(tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("branch %d still has %d students or teachers", id, n))
		}
		return tx.Delete(&model.BranchModel{}, id).Error
	})
}
