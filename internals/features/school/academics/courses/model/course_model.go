package model

import "time"

// CourseModel merepresentasikan tabel courses. Enrolled students are not
// mirrored here; they come from a query on student_courses.
type CourseModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:200;not null" json:"name"`
	Code      string    `gorm:"column:code;size:50;not null;uniqueIndex:uq_courses_code" json:"code"`
	Credits   int       `gorm:"column:credits;not null" json:"credits"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
