// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	raw, err := storage.Read()
	require.NoError(t, err)
	assert.Nil(t, raw, "missing record reads as absent, not as an error")

	require.NoError(t, storage.Write([]byte(`{"token":"abc123"}`)))

	raw, err = storage.Read()
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc123"}`, string(raw))

	require.NoError(t, storage.Purge())
	raw, err = storage.Read()
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestFileStorage_PurgeMissingIsNoOp(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	assert.NoError(t, storage.Purge())
}

func TestFileStorage_UsesWellKnownKey(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	require.NoError(t, storage.Write([]byte(`{}`)))

	_, err := os.Stat(filepath.Join(dir, StorageKey+".json"))
	assert.NoError(t, err)
}

func TestFileStorage_RecordIsOwnerOnly(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	require.NoError(t, storage.Write([]byte(`{"token":"abc123"}`)))

	info, err := os.Stat(filepath.Join(dir, StorageKey+".json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
