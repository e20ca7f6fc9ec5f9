// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

/*
Package shortcode generates compact numeric codes for article short links.

Short links (e.g., /p/483920) are printed in the weekly paper edition and
shared over WhatsApp, where Hebrew slugs and long UUIDs are impractical.
Codes are random rather than sequential so article counts are not leaked.
*/
package shortcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Length is the number of digits in a short-link code.
const Length = 6

// codeSpace is 10^Length, the number of possible codes.
var codeSpace = big.NewInt(1_000_000)

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// New generates a random 6-digit code, zero-padded ("042913").
//
// Uniqueness is not guaranteed here; the caller retries on a storage
// conflict.
func New() string {
	n, err := rand.Int(rand.Reader, codeSpace)

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("shortcode: failed to read random source: " + err.Error())
	}

	return fmt.Sprintf("%0*d", Length, n)
}

// IsValid reports whether s has the shape of a short-link code.
func IsValid(s string) bool {
	return codePattern.MatchString(s)
}
