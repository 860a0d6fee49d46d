package dto

import (
	"gradebook_backend/internals/features/school/grades/model"
)

// GradeRequest replaces every mark of the row; an omitted mark is stored
// as null.
type GradeRequest struct {
	Mse1            *float64 `json:"mse1" validate:"omitempty,gte=0"`
	Mse2            *float64 `json:"mse2" validate:"omitempty,gte=0"`
	Task1           *float64 `json:"task1" validate:"omitempty,gte=0"`
	Task2           *float64 `json:"task2" validate:"omitempty,gte=0"`
	Task3           *float64 `json:"task3" validate:"omitempty,gte=0"`
	RecordMarks     *float64 `json:"record_marks" validate:"omitempty,gte=0"`
	ConductionMarks *float64 `json:"conduction_marks" validate:"omitempty,gte=0"`
	MseLab          *float64 `json:"mse_lab" validate:"omitempty,gte=0"`
	SeeScore        *float64 `json:"see_score" validate:"omitempty,gte=0"`
}

// Apply copies the marks onto m, nil included.
func (r GradeRequest) Apply(m *model.GradeModel) {
	m.Mse1 = r.Mse1
	m.Mse2 = r.Mse2
	m.Task1 = r.Task1
	m.Task2 = r.Task2
	m.Task3 = r.Task3
	m.RecordMarks = r.RecordMarks
	m.ConductionMarks = r.ConductionMarks
	m.MseLab = r.MseLab
	m.SeeScore = r.SeeScore
}

type GradeResponse struct {
	ID        int64 `json:"id"`
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
	Semester  int   `json:"semester"`

	Mse1            *float64 `json:"mse1"`
	Mse2            *float64 `json:"mse2"`
	Task1           *float64 `json:"task1"`
	Task2           *float64 `json:"task2"`
	Task3           *float64 `json:"task3"`
	RecordMarks     *float64 `json:"record_marks"`
	ConductionMarks *float64 `json:"conduction_marks"`
	MseLab          *float64 `json:"mse_lab"`
	SeeScore        *float64 `json:"see_score"`

	IATotal        float64 `json:"ia_total"`
	ReducedIATotal float64 `json:"reduced_ia_total"`
}
