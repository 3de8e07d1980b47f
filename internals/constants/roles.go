package constants

import "fmt"

const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
	RoleAdmin    = "admin"
)

// Role error message templates
const (
	ErrOnlyLandlordsCanAccess = "Only landlords or admins may access %s."
	ErrOnlyAdminsCanAccess    = "Only admins may access %s."
)

func RoleErrorLandlord(feature string) string {
	return fmt.Sprintf(ErrOnlyLandlordsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleTenant,
		RoleLandlord,
		RoleAdmin,
	}

	LandlordAndAbove = []string{
		RoleLandlord,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
