// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin can see and act on every plot.
	RoleAdmin Role = "admin"
	// RoleLandowner owns plots and the crops grown on them.
	RoleLandowner Role = "landowner"
	// RoleFarmer works plots through leases.
	RoleFarmer Role = "farmer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLandowner, RoleFarmer:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a user may pick this role at signup.
func (r Role) IsSelfAssignable() bool {
	return r == RoleLandowner || r == RoleFarmer
}
