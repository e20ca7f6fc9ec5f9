// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// A full week: readers stay signed in between weekly paper editions
	// without a refresh-token mechanism.
	AccessTokenTTL = 7 * 24 * time.Hour

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 6

	// NameMaxLength bounds the display name accepted at registration.
	NameMaxLength = 60
)
