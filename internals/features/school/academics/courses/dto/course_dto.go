package dto

import (
	"strings"
	"time"

	"gradebook_backend/internals/features/school/academics/courses/model"
)

type CourseRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Code    string `json:"code" validate:"required,max=50"`
	Credits int    `json:"credits" validate:"min=0,max=60"`
}

func (r *CourseRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

type CourseResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.CourseModel) CourseResponse {
	return CourseResponse{
		ID:        m.ID,
		Name:      m.Name,
		Code:      m.Code,
		Credits:   m.Credits,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
