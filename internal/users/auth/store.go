// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package auth

import (
	"context"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently by the team.
//
// # Implementations
//
// The canonical implementation for Tenufa is PostgreSQL (store_postgres.go).
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a brand-new user account to the storage.
	//
	// Returns [apperr.Conflict] if the email is already registered.
	Create(ctx context.Context, user *User) error

	// List returns every registered account, newest first.
	// Used by the admin dashboard; password hashes never leave JSON anyway.
	List(ctx context.Context) ([]User, error)

	// UpdateRole changes the authorization level of an existing account.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	UpdateRole(ctx context.Context, id string, role string) error

	// Delete permanently removes an account.
	Delete(ctx context.Context, id string) error
}
