package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/databases/dbtest"
	"gradebook_backend/internals/features/school/grades/dto"
)

func setup(t *testing.T) (*GradeService, int64, int64, *bytes.Buffer) {
	t.Helper()
	db := dbtest.Open(t)
	branch := dbtest.Branch(t, db, "CSE")
	student := dbtest.StudentRow(t, db, branch.ID, "1SG21CS001")
	course := dbtest.Course(t, db, "CS501")

	var buf bytes.Buffer
	svc := NewGradeService(db, log.NewLogfmtLogger(&buf))
	return svc, student.ID, course.ID, &buf
}

func TestUpsertCreatesThenReplaces(t *testing.T) {
	svc, sid, cid, _ := setup(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, dbtest.Teacher, sid, cid, 5, dto.GradeRequest{
		Mse1: f(20), Mse2: f(12), RecordMarks: f(20), MseLab: f(20), SeeScore: f(60),
	})
	require.NoError(t, err)
	assert.Equal(t, 72.0, first.IATotal)
	assert.Equal(t, 35.0, first.ReducedIATotal)
	assert.Equal(t, 5, first.Semester)

	// full replace: marks left out of the second payload become null
	second, err := svc.Upsert(ctx, dbtest.Admin, sid, cid, 5, dto.GradeRequest{Mse1: f(10)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.Mse2)
	assert.Nil(t, second.SeeScore)
	assert.Equal(t, 10.0, second.IATotal)
	assert.Equal(t, 6.0, second.ReducedIATotal)

	assert.Equal(t, int64(1), dbtest.Count(t, svc.DB, "grades", "student_id = ? AND course_id = ?", sid, cid))
}

func TestUpsertSameInputIsIdempotent(t *testing.T) {
	svc, sid, cid, _ := setup(t)
	ctx := context.Background()
	req := dto.GradeRequest{Mse1: f(18), Task1: f(9)}

	a, err := svc.Upsert(ctx, dbtest.Teacher, sid, cid, 1, req)
	require.NoError(t, err)
	b, err := svc.Upsert(ctx, dbtest.Teacher, sid, cid, 1, req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(1), dbtest.Count(t, svc.DB, "grades", ""))
}

func TestUpsertSeparatesSemesters(t *testing.T) {
	svc, sid, cid, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, dbtest.Teacher, sid, cid, 1, dto.GradeRequest{Mse1: f(1)})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, dbtest.Teacher, sid, cid, 2, dto.GradeRequest{Mse1: f(2)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), dbtest.Count(t, svc.DB, "grades", ""))
}

func TestUpsertMissingStudentOrCourse(t *testing.T) {
	svc, sid, cid, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, dbtest.Teacher, 9999, cid, 1, dto.GradeRequest{})
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
	assert.Contains(t, err.Error(), "9999")

	_, err = svc.Upsert(ctx, dbtest.Teacher, sid, 8888, 1, dto.GradeRequest{})
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
	assert.Contains(t, err.Error(), "8888")

	assert.Equal(t, int64(0), dbtest.Count(t, svc.DB, "grades", ""))
}

func TestUpsertForbiddenForStudent(t *testing.T) {
	svc, sid, cid, _ := setup(t)

	_, err := svc.Upsert(context.Background(), dbtest.Student, sid, cid, 1, dto.GradeRequest{Mse1: f(1)})
	assert.Equal(t, fiber.StatusForbidden, dbtest.Status(err))
	assert.Equal(t, int64(0), dbtest.Count(t, svc.DB, "grades", ""))
}

func TestGetMissingRow(t *testing.T) {
	svc, sid, cid, _ := setup(t)

	_, err := svc.Get(context.Background(), dbtest.Student, sid, cid, 3)
	assert.Equal(t, fiber.StatusNotFound, dbtest.Status(err))
}

func TestFinalMatchesGetAndLogsScore(t *testing.T) {
	svc, sid, cid, buf := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, dbtest.Teacher, sid, cid, 4, dto.GradeRequest{
		Mse1: f(20), Mse2: f(12), RecordMarks: f(20), MseLab: f(20), SeeScore: f(81),
	})
	require.NoError(t, err)
	buf.Reset()

	plain, err := svc.Get(ctx, dbtest.Student, sid, cid, 4)
	require.NoError(t, err)
	final, err := svc.Final(ctx, dbtest.Student, sid, cid, 4)
	require.NoError(t, err)

	assert.Equal(t, plain, final)
	assert.Contains(t, buf.String(), "msg=\"final score\"")
	assert.Contains(t, buf.String(), "score=75.5")
	assert.Contains(t, buf.String(), "semester=4")
}
