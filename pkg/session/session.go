// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

/*
Package session owns the authenticated-user state of a Tenufa client.

A Session is either absent or complete: both the user identity and the
bearer token are present, or there is no session at all. The package
reconciles the in-memory value against a persisted record at startup,
persists it on login and registration, and clears it on logout. Callers
read Current to decide whether protected requests should be attempted.
*/
package session

import (
	"encoding/json"
)

// StorageKey is the single well-known key under which the session record
// is persisted. Every read and write of the record goes through this
// constant; divergent keys between the login and load paths are exactly
// the failure mode this package exists to prevent.
const StorageKey = "tenufa_session"

// Identity is the user half of a session, as issued by the server.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session is a complete authenticated session: who the user is plus the
// bearer token proving it. Values are only ever constructed through
// newSession, which rejects partial records.
type Session struct {
	Identity Identity `json:"user"`
	Token    string   `json:"token"`
}

// Complete reports whether both halves of the session are present.
// A record with a token but no identity (or the reverse) must never be
// treated as authenticated.
func (s *Session) Complete() bool {
	return s != nil && s.Token != "" && s.Identity.ID != "" && s.Identity.Name != ""
}

// newSession is the single construction point for Session values.
// It returns false when the parts do not form a complete session.
func newSession(identity Identity, token string) (*Session, bool) {
	candidate := &Session{Identity: identity, Token: token}
	if !candidate.Complete() {
		return nil, false
	}
	return candidate, true
}

// decodeSession parses a persisted record defensively. Malformed JSON,
// a legacy-shaped record, or a record missing either half all yield
// ok=false; the caller is expected to purge the offending entry.
func decodeSession(raw []byte) (*Session, bool) {
	var record Session
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, false
	}
	return newSession(record.Identity, record.Token)
}
