package helper

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/constants"
)

func status(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return http.StatusOK
	}
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "want *fiber.Error, got %T", err)
	return fe.Code
}

func TestRequire(t *testing.T) {
	admin := Principal{UserID: 1, Role: constants.RoleAdmin}
	teacher := Principal{UserID: 2, Role: constants.RoleTeacher}
	student := Principal{UserID: 3, Role: constants.RoleStudent}

	cases := []struct {
		name string
		p    Principal
		op   Operation
		want int
	}{
		{"admin creates branch", admin, OpBranchCreate, http.StatusOK},
		{"teacher creates branch", teacher, OpBranchCreate, http.StatusForbidden},
		{"student reads courses", student, OpCourseRead, http.StatusOK},
		{"student lists course roster", student, OpCourseStudents, http.StatusForbidden},
		{"teacher writes grades", teacher, OpGradeWrite, http.StatusOK},
		{"student writes grades", student, OpGradeWrite, http.StatusForbidden},
		{"student reads grades", student, OpGradeRead, http.StatusOK},
		{"teacher marks attendance", teacher, OpAttendanceMark, http.StatusOK},
		{"student searches", student, OpStudentSearch, http.StatusForbidden},
		{"teacher deletes student", teacher, OpStudentDelete, http.StatusForbidden},
		{"anonymous", Principal{}, OpCourseRead, http.StatusUnauthorized},
		{"unknown role", Principal{UserID: 9, Role: "ROOT"}, OpCourseRead, http.StatusUnauthorized},
		{"unknown operation", admin, Operation("nope"), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status(t, Require(tc.p, tc.op)))
		})
	}
}

func TestEveryOperationAllowsAdmin(t *testing.T) {
	for op := range operationRoles {
		assert.Contains(t, AllowedRoles(op), constants.RoleAdmin, op)
	}
}
