package dto

import (
	"strings"
	"time"

	branchDto "gradebook_backend/internals/features/school/academics/branches/dto"
	"gradebook_backend/internals/features/school/teachers/model"
)

type TeacherUpdateRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	BranchID  int64  `json:"branch_id" validate:"required,gt=0"`
}

func (r *TeacherUpdateRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type TeacherCreateRequest struct {
	TeacherUpdateRequest
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type TeacherResponse struct {
	ID        int64                    `json:"id"`
	FirstName string                   `json:"first_name"`
	LastName  string                   `json:"last_name"`
	Email     string                   `json:"email"`
	Branch    branchDto.BranchResponse `json:"branch"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func FromModel(m model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Branch:    branchDto.FromModel(m.Branch),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
