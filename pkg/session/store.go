// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
)

// ErrAuthFailed is the expected-rejection outcome of Login and Register:
// wrong password, unknown email, duplicate registration. It carries no
// further detail; transport and server faults are returned as distinct,
// wrapped errors so diagnostics are not lost.
var ErrAuthFailed = errors.New("authentication failed")

// Authenticator exchanges credentials for an identity and a bearer token.
// Implementations return ErrAuthFailed (possibly wrapped) for expected
// rejections and any other error for transport or server faults.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Identity, string, error)
	Register(ctx context.Context, name, email, password string) (Identity, string, error)
}

// CredentialSink is the outbound-request layer's default-credential slot.
// The store pushes the token here on initialize/login/register and clears
// it on logout, so request call sites never re-derive the credential.
type CredentialSink interface {
	SetAuthToken(token string)
	ClearAuthToken()
}

// Store is the single authority on "who is logged in". It is safe for
// concurrent use; the persisted record is always replaced whole.
type Store struct {
	mu      sync.Mutex
	storage Storage
	auth    Authenticator
	sink    CredentialSink
	current *Session
	logger  *slog.Logger
}

// NewStore wires the store to its durable record, the authentication
// endpoint and the outbound-request layer. sink may be nil when there is
// no shared request layer to attach the credential to.
func NewStore(storage Storage, auth Authenticator, sink CredentialSink, logger *slog.Logger) *Store {
	return &Store{storage: storage, auth: auth, sink: sink, logger: logger}
}

// Initialize reconciles the in-memory session against the persisted
// record. A missing record yields nil. A record that cannot be decoded
// into a complete session also yields nil and is purged, so a corrupt
// value is never retried on every subsequent start.
func (store *Store) Initialize() *Session {
	store.mu.Lock()
	defer store.mu.Unlock()

	raw, err := store.storage.Read()
	if err != nil {
		store.logger.Warn("session record unreadable, starting logged out", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	restored, ok := decodeSession(raw)
	if !ok {
		store.logger.Warn("purging malformed session record")
		if err := store.storage.Purge(); err != nil {
			store.logger.Warn("failed to purge malformed session record", "error", err)
		}
		return nil
	}

	store.adopt(restored)
	return restored
}

// Login exchanges credentials for a session, persists it and adopts it
// as current. An expected rejection returns ErrAuthFailed; the caller
// shows an inline message rather than treating it as a fault.
func (store *Store) Login(ctx context.Context, email, password string) (*Session, error) {
	identity, token, err := store.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return store.establish(identity, token)
}

// Register creates an account and signs the new user in, with the same
// outcome contract as Login. The server is the sole arbiter of email
// uniqueness; a duplicate registration comes back as ErrAuthFailed.
func (store *Store) Register(ctx context.Context, name, email, password string) (*Session, error) {
	identity, token, err := store.auth.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return store.establish(identity, token)
}

// Logout clears the in-memory session, the persisted record and the
// default outbound credential. Safe to call when no session exists.
func (store *Store) Logout() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.current = nil
	if store.sink != nil {
		store.sink.ClearAuthToken()
	}
	if err := store.storage.Purge(); err != nil {
		store.logger.Warn("failed to remove session record", "error", err)
	}
}

// Current is a pure read of the in-memory session; it never touches
// storage. The returned session is nil or complete, never partial.
func (store *Store) Current() *Session {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current
}

// establish merges an authentication response into a session. A response
// missing either half is reported as ErrAuthFailed rather than adopted
// as a half-populated session.
func (store *Store) establish(identity Identity, token string) (*Session, error) {
	established, ok := newSession(identity, token)
	if !ok {
		return nil, ErrAuthFailed
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.adopt(established)

	// The user is signed in for this process either way; a persist
	// failure only degrades the reload path, so it is logged rather
	// than undoing the adoption.
	if raw, err := json.Marshal(established); err != nil {
		store.logger.Warn("failed to encode session record", "error", err)
	} else if err := store.storage.Write(raw); err != nil {
		store.logger.Warn("failed to persist session record", "error", err)
	}
	return established, nil
}

// adopt installs a complete session as current and pushes its token to
// the outbound-request layer. Caller holds store.mu.
func (store *Store) adopt(adopted *Session) {
	store.current = adopted
	if store.sink != nil {
		store.sink.SetAuthToken(adopted.Token)
	}
}
