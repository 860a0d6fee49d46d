package dbtest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gradebook_backend/internals/constants"
	branchModel "gradebook_backend/internals/features/school/academics/branches/model"
	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
	studentModel "gradebook_backend/internals/features/school/students/model"
	teacherModel "gradebook_backend/internals/features/school/teachers/model"
	userModel "gradebook_backend/internals/features/users/user/model"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

// Principals for role-table tests. The ids need not exist in the database.
var (
	Admin   = helperAuth.Principal{UserID: 1, Email: "admin@sgm.com", Role: constants.RoleAdmin}
	Teacher = helperAuth.Principal{UserID: 2, Email: "teacher@sgm.com", Role: constants.RoleTeacher}
	Student = helperAuth.Principal{UserID: 3, Email: "student@sgm.com", Role: constants.RoleStudent}
)

// User inserts an account with a cheap bcrypt hash of password.
func User(t testing.TB, db *gorm.DB, email, password, role string) userModel.UserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := userModel.UserModel{Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func Branch(t testing.TB, db *gorm.DB, name string) branchModel.BranchModel {
	t.Helper()
	b := branchModel.BranchModel{Name: name}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func Course(t testing.TB, db *gorm.DB, code string) courseModel.CourseModel {
	t.Helper()
	c := courseModel.CourseModel{Name: "Course " + code, Code: code, Credits: 4}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// StudentRow inserts a student and its account directly.
func StudentRow(t testing.TB, db *gorm.DB, branchID int64, usn string) studentModel.StudentModel {
	t.Helper()
	email := fmt.Sprintf("%s@students.sgm.com", usn)
	u := User(t, db, email, "secret123", constants.RoleStudent)
	s := studentModel.StudentModel{
		USN:       usn,
		FirstName: "First " + usn,
		LastName:  "Last",
		Email:     email,
		Year:      2,
		Section:   "A",
		BranchID:  branchID,
		UserID:    u.ID,
	}
	require.NoError(t, db.Omit(clause.Associations).Create(&s).Error)
	return s
}

func TeacherRow(t testing.TB, db *gorm.DB, branchID int64, email string) teacherModel.TeacherModel {
	t.Helper()
	u := User(t, db, email, "secret123", constants.RoleTeacher)
	m := teacherModel.TeacherModel{FirstName: "T", LastName: "Row", Email: email, BranchID: branchID, UserID: u.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&m).Error)
	return m
}

// Enroll adds a membership row directly.
func Enroll(t testing.TB, db *gorm.DB, studentID, courseID int64) {
	t.Helper()
	require.NoError(t, db.Omit(clause.Associations).Create(&studentModel.StudentCourseModel{StudentID: studentID, CourseID: courseID}).Error)
}

// Count returns the number of rows in table matching where.
func Count(t testing.TB, db *gorm.DB, table string, where string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Table(table)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

// Status returns the HTTP code carried by a *fiber.Error, or 0.
func Status(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}
