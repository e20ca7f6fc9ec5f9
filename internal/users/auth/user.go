// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

/*
Package auth implements the user identity layer of the Tenufa platform.

It defines the core domain entities (User) and logic for authentication,
authorization, and account lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/zfatbt/tenufa/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Tenufa platform.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Profile is the public representation of a user embedded in auth responses.
//
// The web client persists this (plus the token) across page loads, so it
// carries only what the client needs to render and authorize UI.
type Profile struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Role sec.UserRole `json:"role"`
}

// PublicProfile projects a [User] to its client-safe subset.
func (u *User) PublicProfile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Role: u.Role}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)
