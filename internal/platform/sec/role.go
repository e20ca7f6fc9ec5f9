// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, including user management
	RoleAdmin UserRole = "admin"

	// Can publish and manage all site content (posts, ads, alerts, issues)
	RoleEditor UserRole = "editor"

	// Can author posts pending editorial review
	RoleWriter UserRole = "writer"

	// Default role for registered readers
	RoleUser UserRole = "user"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 30
	case RoleWriter:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}

// Valid reports whether the role is one of the recognized account roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleWriter, RoleUser:
		return true
	}
	return false
}
