// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

/*
Package client is the Go SDK for the Tenufa news API.

It mirrors what the web client does over the wire: public collection
reads need no credential, protected reads and all mutations carry the
bearer token in the x-auth-token header. The token is held as a default
credential on the Client (see SetAuthToken), so a [session.Store] can
attach it once at startup instead of every call site re-deriving it.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// AuthHeader is the request header carrying the bearer credential.
const AuthHeader = "x-auth-token"

const requestTimeout = 30 * time.Second

// Client is the Tenufa API client. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	authToken string
}

// New creates a client for the API at baseURL (e.g. "https://zfatbt.com").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SetAuthToken installs token as the default credential attached to
// every subsequent request.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.authToken = token
	c.mu.Unlock()
}

// ClearAuthToken removes the default credential.
func (c *Client) ClearAuthToken() {
	c.SetAuthToken("")
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var requestBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		requestBody = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.authToken
	c.mu.RUnlock()
	if token != "" {
		request.Header.Set(AuthHeader, token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer response.Body.Close() //nolint:errcheck

	if response.StatusCode >= 400 {
		return decodeAPIError(response)
	}

	if out != nil {
		if err := json.NewDecoder(response.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(response *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if readErr != nil {
		return &APIError{StatusCode: response.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
	}

	var payload struct {
		Msg  string `json:"msg"`
		Code string `json:"code"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Msg != "" {
		return &APIError{StatusCode: response.StatusCode, Code: payload.Code, Message: payload.Msg}
	}
	return &APIError{StatusCode: response.StatusCode, Message: string(raw)}
}
