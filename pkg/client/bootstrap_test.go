// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/pkg/session"
)

// countingAPI is a fake Tenufa API recording per-path request counts
// and the credential header each request carried.
type countingAPI struct {
	mu      sync.Mutex
	counts  map[string]int
	headers map[string]string
	fail    map[string]int // path -> status code to respond with
}

func newCountingAPI() *countingAPI {
	return &countingAPI{
		counts:  make(map[string]int),
		headers: make(map[string]string),
		fail:    make(map[string]int),
	}
}

func (api *countingAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.mu.Lock()
	api.counts[r.URL.Path]++
	api.headers[r.URL.Path] = r.Header.Get(AuthHeader)
	status := api.fail[r.URL.Path]
	api.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"msg": "unavailable"}) //nolint:errcheck
		return
	}

	switch r.URL.Path {
	case "/api/login":
		json.NewEncoder(w).Encode(Credentials{ //nolint:errcheck
			Token: "fresh",
			User:  session.Identity{ID: "u2", Name: "Noam", Role: "admin"},
		})
	case "/api/posts":
		json.NewEncoder(w).Encode(PostPage{ //nolint:errcheck
			Posts:       []Post{{ID: "p1", Title: "שלום"}},
			TotalPages:  1,
			CurrentPage: 1,
		})
	case "/api/users":
		json.NewEncoder(w).Encode([]User{{ID: "u1", Name: "Dana"}}) //nolint:errcheck
	case "/api/contact":
		json.NewEncoder(w).Encode([]ContactMessage{}) //nolint:errcheck
	case "/api/newsletter":
		json.NewEncoder(w).Encode([]Subscriber{}) //nolint:errcheck
	default:
		json.NewEncoder(w).Encode([]any{}) //nolint:errcheck
	}
}

func (api *countingAPI) count(path string) int {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.counts[path]
}

func (api *countingAPI) header(path string) string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.headers[path]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLoader wires a loader against the fake API, optionally with a
// persisted session record in place before reconciliation.
func newLoader(t *testing.T, api *countingAPI, persisted string) (*Loader, *session.Store) {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	httpAPI := New(srv.URL)
	storage := session.NewMemoryStorage()
	if persisted != "" {
		require.NoError(t, storage.Write([]byte(persisted)))
	}

	sessions := session.NewStore(storage, NewAuthenticator(httpAPI), httpAPI, discardLogger())
	sessions.Initialize()
	return NewLoader(httpAPI, sessions, discardLogger()), sessions
}

func TestLoad_FreshVisit(t *testing.T) {
	api := newCountingAPI()
	loader, sessions := newLoader(t, api, "")

	assert.Nil(t, sessions.Current())
	snapshot := loader.Load(context.Background())

	assert.Len(t, snapshot.Posts, 1)
	assert.Equal(t, 1, api.count("/api/posts"))
	assert.Equal(t, 1, api.count("/api/ads"))

	// Logged out: the protected endpoints must not be hit at all.
	assert.Zero(t, api.count("/api/users"))
	assert.Zero(t, api.count("/api/contact"))
	assert.Zero(t, api.count("/api/newsletter"))

	assert.False(t, loader.Loading())
}

func TestLoad_ReturningAuthenticatedUser(t *testing.T) {
	api := newCountingAPI()
	record := `{"user":{"id":"u1","name":"Dana","role":"editor"},"token":"abc123"}`
	loader, sessions := newLoader(t, api, record)

	require.NotNil(t, sessions.Current())
	assert.Equal(t, "Dana", sessions.Current().Identity.Name)

	snapshot := loader.Load(context.Background())
	assert.Len(t, snapshot.Users, 1)

	// Protected endpoints are called exactly once, with the restored
	// credential attached.
	assert.Equal(t, 1, api.count("/api/users"))
	assert.Equal(t, 1, api.count("/api/contact"))
	assert.Equal(t, 1, api.count("/api/newsletter"))
	assert.Equal(t, "abc123", api.header("/api/users"))

	assert.False(t, loader.Loading())
}

func TestLoad_SettlesWhenPublicFetchFails(t *testing.T) {
	api := newCountingAPI()
	api.fail["/api/ads"] = http.StatusInternalServerError
	record := `{"user":{"id":"u1","name":"Dana","role":"editor"},"token":"abc123"}`
	loader, _ := newLoader(t, api, record)

	snapshot := loader.Load(context.Background())

	// The broken section stays empty; everything else still loads and
	// the page never hangs on a spinner.
	assert.Empty(t, snapshot.Ads)
	assert.Len(t, snapshot.Posts, 1)
	assert.Len(t, snapshot.Users, 1)
	assert.False(t, loader.Loading())
}

func TestLoad_SettlesWhenProtectedFetchFails(t *testing.T) {
	api := newCountingAPI()
	api.fail["/api/users"] = http.StatusInternalServerError
	record := `{"user":{"id":"u1","name":"Dana","role":"editor"},"token":"abc123"}`
	loader, _ := newLoader(t, api, record)

	snapshot := loader.Load(context.Background())

	assert.Empty(t, snapshot.Users)
	assert.Len(t, snapshot.Posts, 1)
	assert.False(t, loader.Loading())
}

func TestLoad_ExpiredTokenKeepsSession(t *testing.T) {
	api := newCountingAPI()
	api.fail["/api/users"] = http.StatusUnauthorized
	api.fail["/api/contact"] = http.StatusUnauthorized
	api.fail["/api/newsletter"] = http.StatusUnauthorized
	record := `{"user":{"id":"u1","name":"Dana","role":"editor"},"token":"revoked"}`
	loader, sessions := newLoader(t, api, record)

	snapshot := loader.Load(context.Background())

	// A revoked token empties the protected lists but does not sign the
	// user out; only an explicit logout clears the session.
	assert.Empty(t, snapshot.Users)
	require.NotNil(t, sessions.Current())
	assert.Equal(t, "Dana", sessions.Current().Identity.Name)
	assert.False(t, loader.Loading())
}

func TestLoad_LoginThenLoadAttachesCredential(t *testing.T) {
	api := newCountingAPI()
	loader, sessions := newLoader(t, api, "")

	// Logged out: first load skips the protected endpoints.
	loader.Load(context.Background())
	assert.Zero(t, api.count("/api/users"))

	established, err := sessions.Login(context.Background(), "noam@zfatbt.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Noam", established.Identity.Name)

	// Logging in pushed the token as the default outbound credential,
	// so the next load fetches the protected lists with it attached.
	loader.Load(context.Background())
	assert.Equal(t, 1, api.count("/api/users"))
	assert.Equal(t, "fresh", api.header("/api/users"))

	// Logout clears the default credential again.
	sessions.Logout()
	loader.Load(context.Background())
	assert.Equal(t, 1, api.count("/api/users"))
	assert.Nil(t, sessions.Current())
}
