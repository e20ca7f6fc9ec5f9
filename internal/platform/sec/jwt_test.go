// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/internal/platform/sec"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret-at-least-32-characters!!", "tenufa")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-123", "Dana", "editor", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Dana", claims.Name)
	assert.Equal(t, "editor", claims.Role)
	assert.Equal(t, sec.RoleEditor, claims.UserRole())
}

func TestTokenService_RejectsExpired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret-at-least-32-characters!!", "tenufa")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-123", "Dana", "editor", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuing, err := sec.NewTokenService("test-secret-at-least-32-characters!!", "tenufa")
	require.NoError(t, err)
	verifying, err := sec.NewTokenService("another-secret-of-sufficient-length!", "tenufa")
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken("user-123", "Dana", "editor", time.Hour)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleWriter))
	assert.True(t, sec.RoleWriter.AtLeast(sec.RoleUser))
	assert.False(t, sec.RoleUser.AtLeast(sec.RoleWriter))
	assert.False(t, sec.RoleEditor.AtLeast(sec.RoleAdmin))
}
