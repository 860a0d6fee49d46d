package dto

import (
	"strings"
	"time"

	"gradebook_backend/internals/features/school/academics/branches/model"
)

type BranchRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

func (r *BranchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type BranchResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.BranchModel) BranchResponse {
	return BranchResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.BranchModel) []BranchResponse {
	out := make([]BranchResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
