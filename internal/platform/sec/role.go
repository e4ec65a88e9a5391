// Copyright (c) 2026 Avironin. All rights reserved.

package sec

// # Roles

// UserRole represents the authorization level of an admin account.
type UserRole string

const (
	// Unrestricted access: author management, deletes, maintenance ops.
	RoleAdmin UserRole = "admin"

	// Can author and publish content but not manage accounts.
	RoleEditor UserRole = "editor"
)

// AtLeast reports whether the role meets or exceeds the target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps roles onto a sparse numeric scale so intermediate roles can be
// added later without renumbering.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 20
	default:
		return 0
	}
}
