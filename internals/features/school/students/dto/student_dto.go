package dto

import (
	"strings"
	"time"

	branchDto "gradebook_backend/internals/features/school/academics/branches/dto"
	courseDto "gradebook_backend/internals/features/school/academics/courses/dto"
	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
	"gradebook_backend/internals/features/school/students/model"
)

/* =========================================================
   REQUEST
========================================================= */

// StudentUpdateRequest is a full replace of the mutable fields.
type StudentUpdateRequest struct {
	USN       string `json:"usn" validate:"required,max=50"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Year      int    `json:"year" validate:"min=1,max=10"`
	Section   string `json:"section" validate:"required,max=20"`
	BranchID  int64  `json:"branch_id" validate:"required,gt=0"`
}

func (r *StudentUpdateRequest) Normalize() {
	r.USN = strings.ToUpper(strings.TrimSpace(r.USN))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Section = strings.TrimSpace(r.Section)
}

// StudentCreateRequest also carries the initial password of the account.
type StudentCreateRequest struct {
	StudentUpdateRequest
	Password string `json:"password" validate:"required,min=6,max=72"`
}

/* =========================================================
   RESPONSE
========================================================= */

type StudentResponse struct {
	ID        int64                      `json:"id"`
	USN       string                     `json:"usn"`
	FirstName string                     `json:"first_name"`
	LastName  string                     `json:"last_name"`
	Email     string                     `json:"email"`
	Year      int                        `json:"year"`
	Section   string                     `json:"section"`
	Branch    branchDto.BranchResponse   `json:"branch"`
	Courses   []courseDto.CourseResponse `json:"courses"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// FromModel expects m.Branch to be loaded.
func FromModel(m model.StudentModel, courses []courseModel.CourseModel) StudentResponse {
	return StudentResponse{
		ID:        m.ID,
		USN:       m.USN,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Year:      m.Year,
		Section:   m.Section,
		Branch:    branchDto.FromModel(m.Branch),
		Courses:   courseDto.FromModels(courses),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromModels pairs each student with its entry in coursesByStudent.
func FromModels(rows []model.StudentModel, coursesByStudent map[int64][]courseModel.CourseModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r, coursesByStudent[r.ID]))
	}
	return out
}
