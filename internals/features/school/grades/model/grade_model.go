package model

import (
	"time"

	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
	studentModel "gradebook_backend/internals/features/school/students/model"
)

// GradeModel holds the raw component marks of one student in one course
// for one semester. Every mark is nullable; aggregation treats nil as 0.
type GradeModel struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	StudentID int64 `gorm:"column:student_id;not null;uniqueIndex:uq_grades_student_course_semester,priority:1" json:"student_id"`
	CourseID  int64 `gorm:"column:course_id;not null;uniqueIndex:uq_grades_student_course_semester,priority:2;index" json:"course_id"`
	Semester  int   `gorm:"column:semester;not null;uniqueIndex:uq_grades_student_course_semester,priority:3" json:"semester"`

	// theory internals
	Mse1  *float64 `gorm:"column:mse1" json:"mse1"`
	Mse2  *float64 `gorm:"column:mse2" json:"mse2"`
	Task1 *float64 `gorm:"column:task1" json:"task1"`
	Task2 *float64 `gorm:"column:task2" json:"task2"`
	Task3 *float64 `gorm:"column:task3" json:"task3"`

	// lab internals
	RecordMarks     *float64 `gorm:"column:record_marks" json:"record_marks"`
	ConductionMarks *float64 `gorm:"column:conduction_marks" json:"conduction_marks"`
	MseLab          *float64 `gorm:"column:mse_lab" json:"mse_lab"`

	// semester end exam
	SeeScore *float64 `gorm:"column:see_score" json:"see_score"`

	Student studentModel.StudentModel `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Course  courseModel.CourseModel   `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
