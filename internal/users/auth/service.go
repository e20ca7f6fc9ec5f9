// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/sec"
	"github.com/zfatbt/tenufa/pkg/uuid"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - name: The display name of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	GenerateAccessToken(userID, name, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// Credentials represents a successfully authenticated account: the signed
// token plus the public profile the client persists alongside it.
type Credentials struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates, hashes, and persists a brand new user account.
//
// # Parameters
//   - context: Context for the database operation.
//   - input: The user-provided registration details.
//
// # Returns
//   - A [*Credentials] pair so the client is signed in immediately.
//   - Returns [apperr.Conflict] if the email already exists.
//
// # Business Rules
//   - Emails must be unique.
//   - Default role is always 'user'; elevation happens via the admin panel.
func (service *Service) Register(context context.Context, input RegisterInput) (*Credentials, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	// Verify email uniqueness. Return a client-safe Conflict error.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("User already exists")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuid.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleUser, // Rule: Default role is always User
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	// ── 5. Token Issuance ─────────────────────────────────────────────────

	// Issuing a token here signs the reader in straight after registering,
	// skipping a redundant login round trip.
	return service.issueCredentials(user)
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Login validates user credentials and issues a signed access token.
//
// # Parameters
//   - context: Context for the database operation.
//   - input: Contains Email and plain-text Password.
//
// # Returns
//   - A [*Credentials] pair containing the token and public profile.
//   - Returns [apperr.Unauthorized] if credentials do not match.
//
// # Flow
//  1. Lookup user by email.
//  2. Verify password hash using Bcrypt.
//  3. Generate long-lived JWT access token.
func (service *Service) Login(context context.Context, input LoginInput) (*Credentials, error) {
	// ── 1. Fetch User Profile ─────────────────────────────────────────────

	// Return generic unauthorized error to prevent email enumeration attacks.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// Prevent timing attacks by always using constant-time comparison in bcrypt.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	return service.issueCredentials(user)
}

// ListUsers returns every registered account for the admin dashboard.
func (service *Service) ListUsers(context context.Context) ([]User, error) {
	return service.userRepository.List(context)
}

// ChangeRole updates the authorization level of an account.
//
// # Returns
//   - Returns [apperr.ValidationError] for an unknown role value.
//   - Returns [apperr.NotFound] if the account does not exist.
func (service *Service) ChangeRole(context context.Context, userID string, role sec.UserRole) error {
	if !role.Valid() {
		return apperr.ValidationError("Unknown role: " + string(role))
	}
	return service.userRepository.UpdateRole(context, userID, string(role))
}

// DeleteUser permanently removes an account.
func (service *Service) DeleteUser(context context.Context, userID string) error {
	return service.userRepository.Delete(context, userID)
}

// issueCredentials signs a fresh access token and bundles the public profile.
func (service *Service) issueCredentials(user *User) (*Credentials, error) {
	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Name, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Credentials{
		Token: token,
		User:  user.PublicProfile(),
	}, nil
}
