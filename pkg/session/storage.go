// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the durable record behind the session. Read returns
// (nil, nil) when no record exists; Purge on a missing record is a no-op.
// Implementations replace the whole record on every Write, so callers
// never observe a partially updated session.
type Storage interface {
	Read() ([]byte, error)
	Write(raw []byte) error
	Purge() error
}

// FileStorage persists the session record as a single file, the local
// equivalent of the browser's localStorage entry.
type FileStorage struct {
	path string
}

// NewFileStorage stores the record at <dir>/<StorageKey>.json.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StorageKey+".json")}
}

func (storage *FileStorage) Read() ([]byte, error) {
	raw, err := os.ReadFile(storage.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (storage *FileStorage) Write(raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(storage.path), 0o700); err != nil {
		return err
	}
	// The token is a credential, keep the record owner-only.
	return os.WriteFile(storage.path, raw, 0o600)
}

func (storage *FileStorage) Purge() error {
	err := os.Remove(storage.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage holds the record in memory. Used in tests and in
// contexts where persistence across restarts is not wanted.
type MemoryStorage struct {
	raw    []byte
	exists bool
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (storage *MemoryStorage) Read() ([]byte, error) {
	if !storage.exists {
		return nil, nil
	}
	return storage.raw, nil
}

func (storage *MemoryStorage) Write(raw []byte) error {
	storage.raw = append([]byte(nil), raw...)
	storage.exists = true
	return nil
}

func (storage *MemoryStorage) Purge() error {
	storage.raw = nil
	storage.exists = false
	return nil
}
