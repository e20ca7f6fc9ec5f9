// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Protected endpoints. All of these require the bearer credential and
// return 401 when it is missing or invalid; the caller decides whether
// to attempt them at all (see Loader).

// ListUsers fetches all accounts. Requires an admin credential.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/users", &users); err != nil {
		return nil, fmt.Errorf("client.ListUsers: %w", err)
	}
	return users, nil
}

// ChangeUserRole updates an account's role. Requires an admin credential.
func (c *Client) ChangeUserRole(ctx context.Context, id, role string) error {
	payload := map[string]string{"role": role}
	if err := c.doRequest(ctx, http.MethodPatch, "/api/users/"+url.PathEscape(id), payload, nil); err != nil {
		return fmt.Errorf("client.ChangeUserRole: %w", err)
	}
	return nil
}

// DeleteUser removes an account. Requires an admin credential.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteUser: %w", err)
	}
	return nil
}

// ListContactMessages fetches the editorial inbox. Requires an editor
// credential.
func (c *Client) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := c.get(ctx, "/api/contact", &messages); err != nil {
		return nil, fmt.Errorf("client.ListContactMessages: %w", err)
	}
	return messages, nil
}

// ListSubscribers fetches the newsletter list. Requires an editor
// credential.
func (c *Client) ListSubscribers(ctx context.Context) ([]Subscriber, error) {
	var subscribers []Subscriber
	if err := c.get(ctx, "/api/newsletter", &subscribers); err != nil {
		return nil, fmt.Errorf("client.ListSubscribers: %w", err)
	}
	return subscribers, nil
}
