package helper

import (
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/constants"
)

// Operation names one service entry point in the role table.
type Operation string

const (
	OpBranchCreate Operation = "branch.create"
	OpBranchRead   Operation = "branch.read"
	OpBranchUpdate Operation = "branch.update"
	OpBranchDelete Operation = "branch.delete"

	OpCourseCreate   Operation = "course.create"
	OpCourseRead     Operation = "course.read"
	OpCourseUpdate   Operation = "course.update"
	OpCourseDelete   Operation = "course.delete"
	OpCourseStudents Operation = "course.students"

	OpStudentCreate Operation = "student.create"
	OpStudentRead   Operation = "student.read"
	OpStudentSearch Operation = "student.search"
	OpStudentUpdate Operation = "student.update"
	OpStudentDelete Operation = "student.delete"

	OpEnrollmentWrite Operation = "enrollment.write"
	OpEnrollmentRead  Operation = "enrollment.read"

	OpTeacherCreate Operation = "teacher.create"
	OpTeacherRead   Operation = "teacher.read"
	OpTeacherUpdate Operation = "teacher.update"
	OpTeacherDelete Operation = "teacher.delete"

	OpGradeWrite Operation = "grade.write"
	OpGradeRead  Operation = "grade.read"

	OpAttendanceMark Operation = "attendance.mark"
	OpAttendanceRead Operation = "attendance.read"

	OpAccountSelf Operation = "account.self"
)

var operationRoles = map[Operation][]string{
	OpBranchCreate: constants.AdminOnly,
	OpBranchRead:   constants.AllRoles,
	OpBranchUpdate: constants.AdminOnly,
	OpBranchDelete: constants.AdminOnly,

	OpCourseCreate:   constants.AdminOnly,
	OpCourseRead:     constants.AllRoles,
	OpCourseUpdate:   constants.AdminOnly,
	OpCourseDelete:   constants.AdminOnly,
	OpCourseStudents: constants.StaffRoles,

	OpStudentCreate: constants.AdminOnly,
	OpStudentRead:   constants.StaffRoles,
	OpStudentSearch: constants.StaffRoles,
	OpStudentUpdate: constants.AdminOnly,
	OpStudentDelete: constants.AdminOnly,

	OpEnrollmentWrite: constants.StaffRoles,
	OpEnrollmentRead:  constants.AllRoles,

	OpTeacherCreate: constants.AdminOnly,
	OpTeacherRead:   constants.StaffRoles,
	OpTeacherUpdate: constants.AdminOnly,
	OpTeacherDelete: constants.AdminOnly,

	OpGradeWrite: constants.StaffRoles,
	OpGradeRead:  constants.AllRoles,

	OpAttendanceMark: constants.StaffRoles,
	OpAttendanceRead: constants.AllRoles,

	OpAccountSelf: constants.AllRoles,
}

// AllowedRoles returns the roles that may run op. Unknown operations allow
// nobody.
func AllowedRoles(op Operation) []string {
	return operationRoles[op]
}

// Require fails with 401 for an anonymous principal and 403 when the
// principal's role is not listed for op.
func Require(p Principal, op Operation) error {
	if !p.IsAuthenticated() {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	for _, r := range operationRoles[op] {
		if r == p.Role {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, constants.RoleError(p.Role, string(op)))
}
