package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/databases/dbtest"
	"gradebook_backend/internals/features/school/attendance/dto"
)

func TestMarkOverwritesSameDay(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewAttendanceService(db)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	c := dbtest.Course(t, db, "CS101")
	ctx := context.Background()

	first, err := svc.Mark(ctx, dbtest.Teacher, dto.AttendanceRequest{StudentID: s.ID, CourseID: c.ID, Date: "2026-03-02", Status: "PRESENT"})
	require.NoError(t, err)
	second, err := svc.Mark(ctx, dbtest.Teacher, dto.AttendanceRequest{StudentID: s.ID, CourseID: c.ID, Date: "2026-03-02", Status: "ABSENT"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ABSENT", second.Status)
	assert.Equal(t, "2026-03-02", second.Date)
	assert.Equal(t, int64(1), dbtest.Count(t, db, "attendances", ""))
}

func TestHistoryIsSortedByDate(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewAttendanceService(db)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	c := dbtest.Course(t, db, "CS101")
	other := dbtest.Course(t, db, "CS102")
	ctx := context.Background()

	for _, d := range []string{"2026-03-09", "2026-02-28", "2026-03-02"} {
		_, err := svc.Mark(ctx, dbtest.Admin, dto.AttendanceRequest{StudentID: s.ID, CourseID: c.ID, Date: d, Status: "PRESENT"})
		require.NoError(t, err)
	}
	_, err := svc.Mark(ctx, dbtest.Admin, dto.AttendanceRequest{StudentID: s.ID, CourseID: other.ID, Date: "2026-01-01", Status: "PRESENT"})
	require.NoError(t, err)

	rows, err := svc.GetForStudent(ctx, dbtest.Student, s.ID, c.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2026-02-28", rows[0].Date)
	assert.Equal(t, "2026-03-02", rows[1].Date)
	assert.Equal(t, "2026-03-09", rows[2].Date)

	rows, err = svc.GetForStudent(ctx, dbtest.Student, 999, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMarkRejects(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewAttendanceService(db)
	branch := dbtest.Branch(t, db, "CSE")
	s := dbtest.StudentRow(t, db, branch.ID, "U1")
	c := dbtest.Course(t, db, "CS101")
	ctx := context.Background()

	_, err := svc.Mark(ctx, dbtest.Teacher, dto.AttendanceRequest{StudentID: 404, CourseID: c.ID, Date: "2026-03-02", Status: "PRESENT"})
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))

	_, err = svc.Mark(ctx, dbtest.Teacher, dto.AttendanceRequest{StudentID: s.ID, CourseID: 404, Date: "2026-03-02", Status: "PRESENT"})
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))

	_, err = svc.Mark(ctx, dbtest.Teacher, dto.AttendanceRequest{StudentID: s.ID, CourseID: c.ID, Date: "02/03/2026", Status: "PRESENT"})
	assert.Equal(t, fiber.StatusBadRequest, dbtest.Status(err))

	_, err = svc.Mark(ctx, dbtest.Student, dto.AttendanceRequest{StudentID: s.ID, CourseID: c.ID, Date: "2026-03-02", Status: "PRESENT"})
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))

	assert.Equal(t, int64(0), dbtest.Count(t, db, "attendances", ""))
}
