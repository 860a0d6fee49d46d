package dto

import (
	"strings"

	"gradebook_backend/internals/features/school/attendance/model"
	"gradebook_backend/internals/helpers/dbtime"
)

type AttendanceRequest struct {
	StudentID int64  `json:"student_id" validate:"required,gt=0"`
	CourseID  int64  `json:"course_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,max=30"`
}

func (r *AttendanceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

type AttendanceResponse struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	CourseID  int64  `json:"course_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        m.ID,
		StudentID: m.StudentID,
		CourseID:  m.CourseID,
		Date:      dbtime.FormatDate(m.Date),
		Status:    m.Status,
	}
}

func FromModels(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
