// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	identity Identity
	token    string
	err      error
	calls    int
}

func (auth *fakeAuthenticator) Login(_ context.Context, _, _ string) (Identity, string, error) {
	auth.calls++
	return auth.identity, auth.token, auth.err
}

func (auth *fakeAuthenticator) Register(_ context.Context, _, _, _ string) (Identity, string, error) {
	auth.calls++
	return auth.identity, auth.token, auth.err
}

type recordingSink struct {
	token   string
	cleared int
}

func (sink *recordingSink) SetAuthToken(token string) { sink.token = token }
func (sink *recordingSink) ClearAuthToken()           { sink.token = ""; sink.cleared++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitialize_NoRecord(t *testing.T) {
	store := NewStore(NewMemoryStorage(), &fakeAuthenticator{}, nil, testLogger())

	assert.Nil(t, store.Initialize())
	assert.Nil(t, store.Current())
}

func TestInitialize_PurgesMalformedRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"user": {`},
		{"missing token", `{"user":{"id":"u1","name":"Dana","role":"editor"}}`},
		{"missing identity", `{"token":"abc123"}`},
		{"legacy shape", `"abc123"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			require.NoError(t, storage.Write([]byte(test.raw)))

			store := NewStore(storage, &fakeAuthenticator{}, nil, testLogger())
			assert.Nil(t, store.Initialize())

			// Self-healing: the corrupt entry must be gone, not retried
			// on every subsequent start.
			raw, err := storage.Read()
			require.NoError(t, err)
			assert.Nil(t, raw)
		})
	}
}

func TestInitialize_AdoptsCompleteRecord(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Write([]byte(`{"user":{"id":"u1","name":"Dana","role":"editor"},"token":"abc123"}`)))

	sink := &recordingSink{}
	store := NewStore(storage, &fakeAuthenticator{}, sink, testLogger())

	restored := store.Initialize()
	require.NotNil(t, restored)
	assert.Equal(t, "Dana", restored.Identity.Name)
	assert.Equal(t, "editor", restored.Identity.Role)
	assert.Equal(t, "abc123", restored.Token)
	assert.Equal(t, "abc123", sink.token)
	assert.Same(t, restored, store.Current())
}

func TestLogin_RoundTripsThroughStorage(t *testing.T) {
	storage := NewMemoryStorage()
	auth := &fakeAuthenticator{
		identity: Identity{ID: "u1", Name: "Dana", Role: "editor"},
		token:    "abc123",
	}

	store := NewStore(storage, auth, &recordingSink{}, testLogger())
	established, err := store.Login(context.Background(), "dana@zfatbt.com", "s3cret")
	require.NoError(t, err)
	require.True(t, established.Complete())

	// Simulated reload: a fresh store over the same storage restores the
	// identical session with no field loss.
	reloaded := NewStore(storage, auth, &recordingSink{}, testLogger())
	restored := reloaded.Initialize()
	require.NotNil(t, restored)
	assert.Equal(t, *established, *restored)
}

func TestLogin_RejectionIsNotASession(t *testing.T) {
	auth := &fakeAuthenticator{err: ErrAuthFailed}
	store := NewStore(NewMemoryStorage(), auth, nil, testLogger())

	established, err := store.Login(context.Background(), "dana@zfatbt.com", "wrong")
	assert.Nil(t, established)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Nil(t, store.Current())
}

func TestLogin_PartialResponseYieldsFailure(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		token    string
	}{
		{"token without identity", Identity{}, "abc123"},
		{"identity without token", Identity{ID: "u1", Name: "Dana", Role: "user"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			auth := &fakeAuthenticator{identity: test.identity, token: test.token}
			store := NewStore(storage, auth, nil, testLogger())

			established, err := store.Login(context.Background(), "dana@zfatbt.com", "s3cret")
			assert.Nil(t, established)
			assert.ErrorIs(t, err, ErrAuthFailed)
			assert.Nil(t, store.Current())

			// A half-populated record must never reach storage either.
			raw, readErr := storage.Read()
			require.NoError(t, readErr)
			assert.Nil(t, raw)
		})
	}
}

// failingStorage rejects every write, simulating a full or read-only
// storage backend.
type failingStorage struct {
	MemoryStorage
}

func (storage *failingStorage) Write(_ []byte) error {
	return errors.New("storage: write rejected")
}

func TestLogin_PersistFailureStillSignsIn(t *testing.T) {
	auth := &fakeAuthenticator{
		identity: Identity{ID: "u1", Name: "Dana", Role: "editor"},
		token:    "abc123",
	}
	store := NewStore(&failingStorage{}, auth, nil, testLogger())

	// A session that cannot be persisted is still a session for this
	// process: the caller gets it with no error, only the reload path
	// is degraded.
	established, err := store.Login(context.Background(), "dana@zfatbt.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, established)
	assert.Same(t, established, store.Current())
}

func TestRegister_EstablishesSession(t *testing.T) {
	auth := &fakeAuthenticator{
		identity: Identity{ID: "u2", Name: "Noam", Role: "user"},
		token:    "fresh-token",
	}
	sink := &recordingSink{}
	store := NewStore(NewMemoryStorage(), auth, sink, testLogger())

	established, err := store.Register(context.Background(), "Noam", "noam@zfatbt.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Noam", established.Identity.Name)
	assert.Equal(t, "fresh-token", sink.token)
}

func TestLogout_ClearsEverything(t *testing.T) {
	storage := NewMemoryStorage()
	auth := &fakeAuthenticator{
		identity: Identity{ID: "u1", Name: "Dana", Role: "editor"},
		token:    "abc123",
	}
	sink := &recordingSink{}
	store := NewStore(storage, auth, sink, testLogger())

	_, err := store.Login(context.Background(), "dana@zfatbt.com", "s3cret")
	require.NoError(t, err)

	store.Logout()

	assert.Nil(t, store.Current())
	assert.Empty(t, sink.token)
	raw, err := storage.Read()
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLogout_IsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	store := NewStore(NewMemoryStorage(), &fakeAuthenticator{}, sink, testLogger())

	// Logging out with no session at all must not panic or error.
	store.Logout()
	store.Logout()

	assert.Nil(t, store.Current())
	assert.Equal(t, 2, sink.cleared)
}
