package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/databases/dbtest"
)

func TestEnrollIsIdempotent(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	c := dbtest.Course(t, db, "CS101")
	ctx := context.Background()

	first, err := svc.Enroll(ctx, dbtest.Teacher, s.ID, c.ID)
	require.NoError(t, err)
	second, err := svc.Enroll(ctx, dbtest.Teacher, s.ID, c.ID)
	require.NoError(t, err)

	require.Len(t, second.Courses, 1)
	assert.Equal(t, "CS101", second.Courses[0].Code)
	assert.Equal(t, first.Courses, second.Courses)
	assert.Equal(t, int64(1), dbtest.Count(t, db, "student_courses", ""))
}

func TestUnenrollAbsentIsNoop(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	a := dbtest.Course(t, db, "CS101")
	b := dbtest.Course(t, db, "CS102")
	dbtest.Enroll(t, db, s.ID, a.ID)
	ctx := context.Background()

	out, err := svc.Unenroll(ctx, dbtest.Admin, s.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, out.Courses, 1)

	out, err = svc.Unenroll(ctx, dbtest.Admin, s.ID, a.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Courses)
	assert.Equal(t, int64(0), dbtest.Count(t, db, "student_courses", ""))
}

func TestEnrollMissingIDs(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	c := dbtest.Course(t, db, "CS101")
	ctx := context.Background()

	_, err := svc.Enroll(ctx, dbtest.Admin, 42, c.ID)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
	_, err = svc.Unenroll(ctx, dbtest.Admin, s.ID, 42)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
	_, err = svc.Enroll(ctx, dbtest.Student, s.ID, c.ID)
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))
}

func TestEnrolledCoursesAndCourseStudents(t *testing.T) {
	svc, db := newService(t, false)
	branch := dbtest.Branch(t, db, "CSE")
	s1 := dbtest.StudentRow(t, db, branch.ID, "U2")
	s2 := dbtest.StudentRow(t, db, branch.ID, "U1")
	c1 := dbtest.Course(t, db, "CS200")
	c2 := dbtest.Course(t, db, "CS100")
	dbtest.Enroll(t, db, s1.ID, c1.ID)
	dbtest.Enroll(t, db, s1.ID, c2.ID)
	dbtest.Enroll(t, db, s2.ID, c1.ID)
	ctx := context.Background()

	courses, err := svc.EnrolledCourses(ctx, dbtest.Student, s1.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "CS100", courses[0].Code)
	assert.Equal(t, "CS200", courses[1].Code)

	students, err := svc.CourseStudents(ctx, dbtest.Teacher, c1.ID)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "U1", students[0].USN)
	assert.Equal(t, "U2", students[1].USN)
	assert.Len(t, students[1].Courses, 2)

	_, err = svc.CourseStudents(ctx, dbtest.Student, c1.ID)
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))
	_, err = svc.EnrolledCourses(ctx, dbtest.Admin, 999)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
}
