package database

import (
	"gorm.io/gorm"

	branchModel "gradebook_backend/internals/features/school/academics/branches/model"
	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
	attendanceModel "gradebook_backend/internals/features/school/attendance/model"
	gradeModel "gradebook_backend/internals/features/school/grades/model"
	studentModel "gradebook_backend/internals/features/school/students/model"
	teacherModel "gradebook_backend/internals/features/school/teachers/model"
	authModel "gradebook_backend/internals/features/users/auth/model"
	userModel "gradebook_backend/internals/features/users/user/model"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&branchModel.BranchModel{},
		&courseModel.CourseModel{},
		&studentModel.StudentModel{},
		&studentModel.StudentCourseModel{},
		&teacherModel.TeacherModel{},
		&gradeModel.GradeModel{},
		&attendanceModel.AttendanceModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
