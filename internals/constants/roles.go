package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "only admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
