package constants

import "fmt"

// Role names as carried in the JWT "role" claim.
const (
	RoleStudent    = "student"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Error message templates for role gates
const (
	ErrOnlyStudentsCanAccess    = "Only students may access %s."
	ErrOnlySupervisorsCanAccess = "Only supervisors may access %s."
	ErrOnlyAdminsCanAccess      = "Only admins may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleSupervisor,
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
