// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zfatbt/tenufa/pkg/session"
)

// Snapshot is everything the front page needs: the public collections,
// plus the protected ones when a session was active during the load.
// A collection whose fetch failed is simply empty; the section renders
// blank instead of crashing or blocking the rest of the page.
type Snapshot struct {
	Posts      []Post
	Ads        []Ad
	Alerts     []Alert
	Newspapers []Newspaper

	// Protected collections, populated only for signed-in staff.
	Users       []User
	Messages    []ContactMessage
	Subscribers []Subscriber
}

// Loader performs the initial data load of a client. Public collections
// are always fetched; protected collections only when the session store
// holds a complete session, since an unauthenticated request to those
// endpoints can only produce a 401.
type Loader struct {
	api      *Client
	sessions *session.Store
	logger   *slog.Logger

	mu      sync.Mutex
	loading bool
}

// NewLoader wires the loader to the API client and the session store.
func NewLoader(api *Client, sessions *session.Store, logger *slog.Logger) *Loader {
	return &Loader{api: api, sessions: sessions, logger: logger}
}

// Loading reports whether a Load is in flight. It is guaranteed to
// return false again after every Load, no matter which individual
// fetches failed; a permanently spinning page is the one outcome this
// loader must never produce.
func (loader *Loader) Loading() bool {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	return loader.loading
}

// Load fetches all collections and returns the resulting snapshot.
// Session reconciliation must already have happened (store.Initialize),
// because the protected-fetch decision reads the current session.
func (loader *Loader) Load(ctx context.Context) Snapshot {
	loader.setLoading(true)
	defer loader.setLoading(false)

	var snapshot Snapshot
	var wg sync.WaitGroup

	// Each fetch writes a disjoint field of the snapshot, so no
	// coordination beyond the WaitGroup is needed.
	loader.fetch(&wg, "posts", func() error {
		page, err := loader.api.ListPosts(ctx, 1, "", nil)
		if err != nil {
			return err
		}
		snapshot.Posts = page.Posts
		return nil
	})
	loader.fetch(&wg, "ads", func() error {
		ads, err := loader.api.ListAds(ctx, "")
		if err != nil {
			return err
		}
		snapshot.Ads = ads
		return nil
	})
	loader.fetch(&wg, "alerts", func() error {
		alerts, err := loader.api.ListAlerts(ctx)
		if err != nil {
			return err
		}
		snapshot.Alerts = alerts
		return nil
	})
	loader.fetch(&wg, "newspapers", func() error {
		issues, err := loader.api.ListNewspapers(ctx)
		if err != nil {
			return err
		}
		snapshot.Newspapers = issues
		return nil
	})

	// Protected collections are skipped outright without a complete
	// session; skipping is not an error, the lists just stay empty.
	if loader.sessions.Current() != nil {
		loader.fetch(&wg, "users", func() error {
			users, err := loader.api.ListUsers(ctx)
			if err != nil {
				return err
			}
			snapshot.Users = users
			return nil
		})
		loader.fetch(&wg, "messages", func() error {
			messages, err := loader.api.ListContactMessages(ctx)
			if err != nil {
				return err
			}
			snapshot.Messages = messages
			return nil
		})
		loader.fetch(&wg, "subscribers", func() error {
			subscribers, err := loader.api.ListSubscribers(ctx)
			if err != nil {
				return err
			}
			snapshot.Subscribers = subscribers
			return nil
		})
	}

	wg.Wait()
	return snapshot
}

// fetch runs one collection fetch in its own goroutine. Failures are
// logged and otherwise swallowed: a 401 on a protected list means the
// token has expired or was revoked, and the list stays empty until the
// user explicitly logs out and back in — the session itself is never
// cleared by a failed background fetch.
func (loader *Loader) fetch(wg *sync.WaitGroup, name string, fn func() error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := fn(); err != nil {
			loader.logger.Warn("collection fetch failed", "collection", name, "error", err)
		}
	}()
}

func (loader *Loader) setLoading(loading bool) {
	loader.mu.Lock()
	loader.loading = loading
	loader.mu.Unlock()
}
