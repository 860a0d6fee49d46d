package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/databases/dbtest"
	"gradebook_backend/internals/features/school/academics/courses/dto"
	helper "gradebook_backend/internals/helpers"
)

func TestCourseCreateAndConflict(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	c, err := svc.Create(ctx, dbtest.Admin, dto.CourseRequest{Name: "Compilers", Code: "cs501", Credits: 4})
	require.NoError(t, err)
	assert.Equal(t, "CS501", c.Code)

	_, err = svc.Create(ctx, dbtest.Admin, dto.CourseRequest{Name: "Other", Code: "CS501", Credits: 3})
	assert.Equal(t, fiber.StatusConflict, dbtest.Status(err))

	other, err := svc.Create(ctx, dbtest.Admin, dto.CourseRequest{Name: "Networks", Code: "CS502", Credits: 3})
	require.NoError(t, err)
	_, err = svc.Update(ctx, dbtest.Admin, other.ID, dto.CourseRequest{Name: "Networks", Code: "CS501", Credits: 3})
	assert.Equal(t, fiber.StatusConflict, dbtest.Status(err))

	rows, _, err := svc.List(ctx, dbtest.Student, helper.Params{All: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CS501", rows[0].Code)

	_, err = svc.Create(ctx, dbtest.Teacher, dto.CourseRequest{Name: "X", Code: "X1"})
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))
}

func TestDeleteCourse(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewCourseService(db)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	graded := dbtest.Course(t, db, "CS101")
	enrolled := dbtest.Course(t, db, "CS102")
	dbtest.Enroll(t, db, s.ID, graded.ID)
	dbtest.Enroll(t, db, s.ID, enrolled.ID)
	require.NoError(t, db.Exec("INSERT INTO grades (student_id, course_id, semester) VALUES (?, ?, 1)", s.ID, graded.ID).Error)
	ctx := context.Background()

	err := svc.Delete(ctx, dbtest.Admin, graded.ID)
	assert.Equal(t, fiber.StatusConflict, dbtest.Status(err))
	assert.Equal(t, int64(1), dbtest.Count(t, db, "courses", "id = ?", graded.ID))

	require.NoError(t, svc.Delete(ctx, dbtest.Admin, enrolled.ID))
	assert.Equal(t, int64(0), dbtest.Count(t, db, "student_courses", "course_id = ?", enrolled.ID))
	assert.Equal(t, int64(1), dbtest.Count(t, db, "student_courses", "course_id = ?", graded.ID))

	err = svc.Delete(ctx, dbtest.Admin, enrolled.ID)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
}
