package model

import (
	"time"

	"gorm.io/datatypes"

	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
	studentModel "gradebook_backend/internals/features/school/students/model"
)

// AttendanceModel is the status of one student in one course on one day.
type AttendanceModel struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	StudentID int64          `gorm:"column:student_id;not null;uniqueIndex:uq_attendances_student_course_date,priority:1" json:"student_id"`
	CourseID  int64          `gorm:"column:course_id;not null;uniqueIndex:uq_attendances_student_course_date,priority:2;index" json:"course_id"`
	Date      datatypes.Date `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendances_student_course_date,priority:3" json:"date"`
	Status    string         `gorm:"column:status;size:30;not null" json:"status"`

	Student studentModel.StudentModel `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Course  courseModel.CourseModel   `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
