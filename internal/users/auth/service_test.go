// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/sec"
)

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	byEmail map[string]*User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*User{}}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User not found with this email")
}

func (f *fakeUserRepository) Create(_ context.Context, user *User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return apperr.Conflict("User already exists")
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) List(_ context.Context) ([]User, error) {
	users := []User{}
	for _, u := range f.byEmail {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepository) UpdateRole(_ context.Context, id string, role string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = sec.UserRole(role)
			return nil
		}
	}
	return apperr.NotFound("User not found")
}

func (f *fakeUserRepository) Delete(_ context.Context, id string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return apperr.NotFound("User not found")
}

// stubTokenProvider returns a fixed token and records the last request.
type stubTokenProvider struct {
	lastRole string
	lastTTL  time.Duration
}

func (s *stubTokenProvider) GenerateAccessToken(_, _, role string, ttl time.Duration) (string, error) {
	s.lastRole = role
	s.lastTTL = ttl
	return "signed-token", nil
}

func newTestService() (*Service, *fakeUserRepository, *stubTokenProvider) {
	repo := newFakeUserRepository()
	tokens := &stubTokenProvider{}
	return NewService(repo, tokens), repo, tokens
}

/*
TestService_Register verifies registration hashes the password, assigns the
default role, and signs the new account in immediately.
*/
func TestService_Register(t *testing.T) {
	service, repo, tokens := newTestService()

	credentials, err := service.Register(context.Background(), RegisterInput{
		Name:     "Noa Peretz",
		Email:    "noa@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	// 1. Token and public profile are returned together
	assert.Equal(t, "signed-token", credentials.Token)
	assert.Equal(t, "Noa Peretz", credentials.User.Name)
	assert.Equal(t, sec.RoleUser, credentials.User.Role)
	assert.NotEmpty(t, credentials.User.ID)

	// 2. Token carries the default role and the weekly TTL
	assert.Equal(t, string(sec.RoleUser), tokens.lastRole)
	assert.Equal(t, AccessTokenTTL, tokens.lastTTL)

	// 3. Password is stored hashed, never in plain text
	stored := repo.byEmail["noa@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret-pass", stored.PasswordHash))
}

/*
TestService_Register_DuplicateEmail verifies a second registration with the
same email is rejected with a Conflict error.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	service, _, _ := newTestService()

	input := RegisterInput{Name: "First", Email: "dup@example.com", Password: "password1"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 409, appError.HTTPStatus)
}

/*
TestService_Login verifies the full register-then-login round trip and that
wrong credentials fail with a generic Unauthorized error.
*/
func TestService_Login(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Name:     "Avi Cohen",
		Email:    "avi@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "valid credentials", email: "avi@example.com", password: "correct-horse", wantStatus: 0},
		{name: "wrong password", email: "avi@example.com", password: "battery-staple", wantStatus: 401},
		{name: "unknown email", email: "ghost@example.com", password: "correct-horse", wantStatus: 401},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			credentials, err := service.Login(context.Background(), LoginInput{
				Email:    tc.email,
				Password: tc.password,
			})

			if tc.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, "signed-token", credentials.Token)
				assert.Equal(t, "Avi Cohen", credentials.User.Name)
				return
			}

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tc.wantStatus, appError.HTTPStatus)
			// Same generic message for both failure modes.
			assert.Equal(t, "Invalid credentials", appError.Message)
		})
	}
}

/*
TestService_ChangeRole verifies role changes validate the target role.
*/
func TestService_ChangeRole(t *testing.T) {
	service, repo, _ := newTestService()

	credentials, err := service.Register(context.Background(), RegisterInput{
		Name:     "Editor Candidate",
		Email:    "editor@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	// 1. Unknown role is rejected before touching storage
	err = service.ChangeRole(context.Background(), credentials.User.ID, sec.UserRole("superuser"))
	require.Error(t, err)

	// 2. Valid promotion is persisted
	err = service.ChangeRole(context.Background(), credentials.User.ID, sec.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, repo.byEmail["editor@example.com"].Role)
}
