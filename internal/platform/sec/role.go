// Copyright (c) 2026 Inner Garden. All rights reserved.

package sec

// # Admin Roles

// UserRole represents the authorization level granted to an admin token.
type UserRole string

const (
	// Unrestricted access to the catalogue and its import tooling
	RoleAdmin UserRole = "admin"

	// Can edit artworks but not import or delete them
	RoleCurator UserRole = "curator"

	// Anonymous gallery visitor, never issued a token
	RoleVisitor UserRole = "visitor"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleCurator:
		return 20
	case RoleVisitor:
		return 10
	default:
		return 0
	}
}
