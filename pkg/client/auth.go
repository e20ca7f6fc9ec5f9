// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/zfatbt/tenufa/pkg/session"
)

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges an email and password for credentials.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Credentials, error) {
	var creds Credentials
	if err := c.post(ctx, "/api/login", req, &creds); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &creds, nil
}

// Register creates an account and returns its first credentials.
// The server is the sole arbiter of email uniqueness.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Credentials, error) {
	var creds Credentials
	if err := c.post(ctx, "/api/register", req, &creds); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return &creds, nil
}

// Authenticator adapts the client to [session.Authenticator]. It folds
// every expected rejection (wrong password, unknown email, duplicate
// registration) into [session.ErrAuthFailed] so callers treat it as
// data, while transport and server faults keep their detail.
type Authenticator struct {
	api *Client
}

// NewAuthenticator wraps the client for use by a [session.Store].
func NewAuthenticator(api *Client) *Authenticator {
	return &Authenticator{api: api}
}

func (auth *Authenticator) Login(ctx context.Context, email, password string) (session.Identity, string, error) {
	creds, err := auth.api.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return session.Identity{}, "", foldRejection(err)
	}
	return creds.User, creds.Token, nil
}

func (auth *Authenticator) Register(ctx context.Context, name, email, password string) (session.Identity, string, error) {
	creds, err := auth.api.Register(ctx, RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return session.Identity{}, "", foldRejection(err)
	}
	return creds.User, creds.Token, nil
}

func foldRejection(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return session.ErrAuthFailed
	}
	return err
}
