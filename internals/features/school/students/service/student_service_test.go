package service

import (
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gradebook_backend/internals/constants"
	"gradebook_backend/internals/databases/dbtest"
	"gradebook_backend/internals/features/school/students/dto"
	authHelper "gradebook_backend/internals/features/users/auth/helper"
	authRepo "gradebook_backend/internals/features/users/auth/repository"
)

func newService(t *testing.T, searchEnabled bool) (*StudentService, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return NewStudentService(db, searchEnabled, log.NewNopLogger()), db
}

func createReq(branchID int64, usn, email string) dto.StudentCreateRequest {
	return dto.StudentCreateRequest{
		StudentUpdateRequest: dto.StudentUpdateRequest{
			USN:       usn,
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     email,
			Year:      3,
			Section:   "B",
			BranchID:  branchID,
		},
		Password: "pass1234",
	}
}

func TestCreateStudentCreatesAccount(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "ECE")

	out, err := svc.Create(context.Background(), dbtest.Admin, createReq(branch.ID, "1sg21ec010", " Asha@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, "1SG21EC010", out.USN)
	assert.Equal(t, "asha@example.com", out.Email)
	assert.Equal(t, "ECE", out.Branch.Name)
	assert.Empty(t, out.Courses)

	user, err := authRepo.FindUserByEmail(db, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStudent, user.Role)
	assert.NotEqual(t, "pass1234", user.Password)
	assert.NoError(t, authHelper.CheckPasswordHash(user.Password, "pass1234"))
}

func TestCreateStudentRejects(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "ECE")
	dbtest.User(t, db, "taken@example.com", "x", constants.RoleTeacher)
	ctx := context.Background()

	_, err := svc.Create(ctx, dbtest.Admin, createReq(404, "U1", "new@example.com"))
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))

	_, err = svc.Create(ctx, dbtest.Admin, createReq(branch.ID, "U1", "taken@example.com"))
	assert.Equal(t, fiber.StatusConflict, dbtest.Status(err))

	_, err = svc.Create(ctx, dbtest.Teacher, createReq(branch.ID, "U1", "new@example.com"))
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))

	assert.Equal(t, int64(0), dbtest.Count(t, db, "students", ""))
	assert.Equal(t, int64(1), dbtest.Count(t, db, "users", ""))
}

func TestCreateStudentDuplicateUSNRollsBackAccount(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "ECE")
	dbtest.StudentRow(t, db, branch.ID, "U1")

	_, err := svc.Create(context.Background(), dbtest.Admin, createReq(branch.ID, "U1", "other@example.com"))
	assert.Equal(t, fiber.StatusConflict, dbtest.Status(err))
	assert.Equal(t, int64(0), dbtest.Count(t, db, "users", "email = ?", "other@example.com"))
}

func TestUpdateStudentEmailLockstep(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "ECE")
	other := dbtest.Branch(t, db, "MECH")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	dbtest.User(t, db, "busy@example.com", "x", constants.RoleTeacher)
	ctx := context.Background()

	req := createReq(other.ID, "U1", "busy@example.com").StudentUpdateRequest
	_, err := svc.Update(ctx, dbtest.Admin, s.ID, req)
	assert.Equal(t, fiber.StatusConflict, dbtest.Status(err))

	req.Email = "fresh@example.com"
	out, err := svc.Update(ctx, dbtest.Admin, s.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", out.Email)
	assert.Equal(t, "MECH", out.Branch.Name)

	user, err := authRepo.FindUserByID(db, s.UserID)
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", user.Email)

	_, err = svc.Update(ctx, dbtest.Admin, 777, req)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
}

func TestDeleteStudentRemovesOwnedRows(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "ECE")
	course := dbtest.Course(t, db, "EC101")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	keep := dbtest.StudentRow(t, db, branch.ID, "U2")
	dbtest.Enroll(t, db, s.ID, course.ID)
	dbtest.Enroll(t, db, keep.ID, course.ID)
	require.NoError(t, db.Exec("INSERT INTO grades (student_id, course_id, semester) VALUES (?, ?, 1)", s.ID, course.ID).Error)
	require.NoError(t, db.Exec("INSERT INTO attendances (student_id, course_id, date, status) VALUES (?, ?, ?, 'PRESENT')",
		s.ID, course.ID, "2026-01-05 00:00:00+00:00").Error)

	require.NoError(t, svc.Delete(context.Background(), dbtest.Admin, s.ID))

	assert.Equal(t, int64(0), dbtest.Count(t, db, "students", "id = ?", s.ID))
	assert.Equal(t, int64(0), dbtest.Count(t, db, "users", "id = ?", s.UserID))
	assert.Equal(t, int64(0), dbtest.Count(t, db, "student_courses", "student_id = ?", s.ID))
	assert.Equal(t, int64(0), dbtest.Count(t, db, "grades", ""))
	assert.Equal(t, int64(0), dbtest.Count(t, db, "attendances", ""))
	assert.Equal(t, int64(1), dbtest.Count(t, db, "student_courses", "student_id = ?", keep.ID))

	err := svc.Delete(context.Background(), dbtest.Admin, s.ID)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
}

func TestSearchIsGatedByFlag(t *testing.T) {
	ctx := context.Background()

	off, db := newService(t, false)
	branch := dbtest.Branch(t, db, "ECE")
	dbtest.StudentRow(t, db, branch.ID, "1SG21EC007")

	rows, err := off.Search(ctx, dbtest.Teacher, "EC007")
	require.NoError(t, err)
	assert.Empty(t, rows)

	on := NewStudentService(db, true, log.NewNopLogger())
	rows, err = on.Search(ctx, dbtest.Teacher, "ec007")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1SG21EC007", rows[0].USN)

	rows, err = on.Search(ctx, dbtest.Teacher, "first 1sg")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = on.Search(ctx, dbtest.Teacher, "nobody")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = on.Search(ctx, dbtest.Student, "ec")
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))
}
