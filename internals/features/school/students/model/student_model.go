package model

import (
	"time"

	branchModel "gradebook_backend/internals/features/school/academics/branches/model"
	userModel "gradebook_backend/internals/features/users/user/model"
)

// StudentModel merepresentasikan tabel students. The student owns its
// user account; course membership lives in student_courses.
type StudentModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	USN       string `gorm:"column:usn;size:50;not null;uniqueIndex:uq_students_usn" json:"usn"`
	FirstName string `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name"`
	Email     string `gorm:"column:email;size:255;not null;uniqueIndex:uq_students_email" json:"email"`
	Year      int    `gorm:"column:year;not null" json:"year"`
	Section   string `gorm:"column:section;size:20;not null" json:"section"`

	BranchID int64                   `gorm:"column:branch_id;not null;index" json:"branch_id"`
	Branch   branchModel.BranchModel `gorm:"foreignKey:BranchID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"branch"`

	UserID int64               `gorm:"column:user_id;not null;uniqueIndex:uq_students_user_id" json:"user_id"`
	User   userModel.UserModel `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }
