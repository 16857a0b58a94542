package models

type UserRole string
type ApplicationStatus string
type BookingStatus string
type PackageTier string

const (
	UserRoleMember  UserRole = "member"
	UserRoleTrainer UserRole = "trainer"
	UserRoleAdmin   UserRole = "admin"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusConfirmed ApplicationStatus = "confirmed"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"

	// Bookings stay pending; payment completion does not advance them.
	BookingStatusPending BookingStatus = "pending"

	PackageTierBasic    PackageTier = "basic"
	PackageTierStandard PackageTier = "standard"
	PackageTierPremium  PackageTier = "premium"
)

// ValidRole reports whether the role is one the platform knows.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleMember, UserRoleTrainer, UserRoleAdmin:
		return true
	default:
		return false
	}
}
