package model

import (
	"time"

	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
)

// StudentCourseModel is one enrollment. The pair is the primary key so
// the membership behaves as a set.
type StudentCourseModel struct {
	StudentID int64                   `gorm:"column:student_id;primaryKey;autoIncrement:false" json:"student_id"`
	CourseID  int64                   `gorm:"column:course_id;primaryKey;autoIncrement:false;index" json:"course_id"`
	Student   StudentModel            `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Course    courseModel.CourseModel `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StudentCourseModel) TableName() string { return "student_courses" }
