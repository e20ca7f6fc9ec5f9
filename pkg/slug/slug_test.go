// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zfatbt/tenufa/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Issue 412", "issue-412"},
		{"accents", "Crème Brûlée", "creme-brulee"},
		{"punctuation", "Hello, World!", "hello-world"},
		{"multiple_spaces", "a   b", "a-b"},
		{"leading_trailing", " --trimmed-- ", "trimmed"},
		// Hebrew titles carry no Latin letters; only the digits survive
		// and the caller falls back to an ID when nothing does.
		{"hebrew_with_number", "גיליון 412", "412"},
		{"hebrew_only", "חדשות צפת", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
