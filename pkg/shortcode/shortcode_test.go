// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package shortcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/pkg/shortcode"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := shortcode.New()
		require.Len(t, code, shortcode.Length)
		assert.True(t, shortcode.IsValid(code), "generated code %q must be valid", code)
		seen[code] = true
	}
	// Not a uniqueness guarantee, but 100 collisions would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestIsValid(t *testing.T) {
	assert.True(t, shortcode.IsValid("042731"))
	assert.False(t, shortcode.IsValid(""))
	assert.False(t, shortcode.IsValid("12345"))
	assert.False(t, shortcode.IsValid("1234567"))
	assert.False(t, shortcode.IsValid("12a456"))
	assert.False(t, shortcode.IsValid("١٢٣٤٥٦")) // non-ASCII digits
}
