package constants

import "fmt"

// Account roles, stored verbatim in users.role.
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "only ADMIN may access %s"
	ErrOnlyStaffCanAccess   = "only ADMIN or TEACHER may access %s"
	ErrRoleCannotAccessTmpl = "role %s may not access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleError(role, feature string) string {
	return fmt.Sprintf(ErrRoleCannotAccessTmpl, role, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
