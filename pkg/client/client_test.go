// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/pkg/session"
)

func TestListPosts_PaginationEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"posts":        []map[string]any{{"id": "p1", "title": "חדשות צפת"}},
			"total_pages":  3,
			"current_page": 1,
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListPosts(context.Background(), 1, "", nil)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "חדשות צפת", page.Posts[0].Title)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListPosts_BareArray(t *testing.T) {
	// Older API deployments returned the list without the envelope.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{ //nolint:errcheck
			{"id": "p1", "title": "a"},
			{"id": "p2", "title": "b"},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListPosts(context.Background(), 0, "", nil)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListAds_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ads", r.URL.Path)
		require.Equal(t, "sidebar", r.URL.Query().Get("area"))
		json.NewEncoder(w).Encode([]Ad{ //nolint:errcheck
			{ID: "a1", Area: "sidebar"},
		})
	}))
	defer srv.Close()

	ads, err := New(srv.URL).ListAds(context.Background(), "sidebar")
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "a1", ads[0].ID)
}

func TestListAds_ItemsWrapper(t *testing.T) {
	// Older API deployments wrapped the list in an items envelope.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"items": []map[string]any{
				{"id": "a1", "area": "top", "is_active": true},
			},
			"total": 1,
		})
	}))
	defer srv.Close()

	ads, err := New(srv.URL).ListAds(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "top", ads[0].Area)
	assert.True(t, ads[0].IsActive)
}

func TestAuthTokenHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(AuthHeader)
		json.NewEncoder(w).Encode([]Alert{}) //nolint:errcheck
	}))
	defer srv.Close()

	api := New(srv.URL)

	_, err := api.ListAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotHeader, "no default credential means no auth header")

	api.SetAuthToken("abc123")
	_, err = api.ListAlerts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotHeader)

	api.ClearAuthToken()
	_, err = api.ListAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotHeader)
}

func TestAPIError_CarriesWirePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
			"msg":  "Invalid credentials",
			"code": "UNAUTHORIZED",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListUsers(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestAuthenticator_FoldsRejections(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantAuthErr bool
	}{
		{"wrong password", http.StatusUnauthorized, true},
		{"duplicate email", http.StatusConflict, true},
		{"validation failure", http.StatusBadRequest, true},
		{"server fault keeps detail", http.StatusInternalServerError, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(test.statusCode)
				json.NewEncoder(w).Encode(map[string]string{"msg": "nope"}) //nolint:errcheck
			}))
			defer srv.Close()

			auth := NewAuthenticator(New(srv.URL))
			_, _, err := auth.Login(context.Background(), "dana@zfatbt.com", "s3cret")
			require.Error(t, err)
			if test.wantAuthErr {
				assert.ErrorIs(t, err, session.ErrAuthFailed)
			} else {
				assert.NotErrorIs(t, err, session.ErrAuthFailed)
				assert.True(t, IsStatus(err, test.statusCode))
			}
		})
	}
}

func TestAuthenticator_PassesCredentialsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "dana@zfatbt.com", req.Email)

		json.NewEncoder(w).Encode(Credentials{ //nolint:errcheck
			Token: "abc123",
			User:  session.Identity{ID: "u1", Name: "Dana", Role: "editor"},
		})
	}))
	defer srv.Close()

	auth := NewAuthenticator(New(srv.URL))
	identity, token, err := auth.Login(context.Background(), "dana@zfatbt.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, "Dana", identity.Name)
	assert.Equal(t, "editor", identity.Role)
}
