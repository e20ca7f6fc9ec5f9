// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListPosts fetches a page of articles. Older deployments of the API
// returned a bare array instead of the pagination envelope, so the
// response is accepted in either shape; a bare array decodes as a
// single page.
func (c *Client) ListPosts(ctx context.Context, page int, category string, tags []string) (*PostPage, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if category != "" {
		params.Set("category", category)
	}
	if len(tags) > 0 {
		params.Set("tags", strings.Join(tags, ","))
	}

	path := "/api/posts"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("client.ListPosts: %w", err)
	}

	result, err := decodePostPage(raw)
	if err != nil {
		return nil, fmt.Errorf("client.ListPosts: %w", err)
	}
	return result, nil
}

func decodePostPage(raw json.RawMessage) (*PostPage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var posts []Post
		if err := json.Unmarshal(trimmed, &posts); err != nil {
			return nil, fmt.Errorf("decode post list: %w", err)
		}
		return &PostPage{Posts: posts, TotalPages: 1, CurrentPage: 1}, nil
	}

	var page PostPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("decode post page: %w", err)
	}
	return &page, nil
}

// GetPost fetches a single article by ID.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.get(ctx, "/api/posts/"+url.PathEscape(id), &post); err != nil {
		return nil, fmt.Errorf("client.GetPost: %w", err)
	}
	return &post, nil
}

// GetPostByShortCode fetches an article by its printed short-link code.
func (c *Client) GetPostByShortCode(ctx context.Context, code string) (*Post, error) {
	var post Post
	if err := c.get(ctx, "/api/posts/code/"+url.PathEscape(code), &post); err != nil {
		return nil, fmt.Errorf("client.GetPostByShortCode: %w", err)
	}
	return &post, nil
}

// LikePost increments an article's like counter and returns the new count.
func (c *Client) LikePost(ctx context.Context, id string) (int, error) {
	var result struct {
		Likes int `json:"likes"`
	}
	if err := c.doRequest(ctx, http.MethodPut, "/api/posts/like/"+url.PathEscape(id), nil, &result); err != nil {
		return 0, fmt.Errorf("client.LikePost: %w", err)
	}
	return result.Likes, nil
}

// CreatePostRequest is the payload for publishing a new article.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Excerpt     string   `json:"excerpt,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ImageCredit string   `json:"image_credit,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsFeatured  bool     `json:"is_featured,omitempty"`
}

// CreatePost publishes a new article. Requires a writer credential.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var created Post
	if err := c.post(ctx, "/api/posts", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreatePost: %w", err)
	}
	return &created, nil
}

// DeletePost removes an article. Requires an editor credential.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("client.DeletePost: %w", err)
	}
	return nil
}

// ListAds fetches active ads, optionally for one placement area. Like the
// posts listing, the response is accepted as either a bare array or an
// {items: [...]} wrapper, as older API deployments used the latter.
func (c *Client) ListAds(ctx context.Context, area string) ([]Ad, error) {
	path := "/api/ads"
	if area != "" {
		path += "?area=" + url.QueryEscape(area)
	}
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("client.ListAds: %w", err)
	}

	ads, err := decodeBareOrWrapped[Ad](raw)
	if err != nil {
		return nil, fmt.Errorf("client.ListAds: %w", err)
	}
	return ads, nil
}

// decodeBareOrWrapped accepts a collection either as a bare JSON array or
// wrapped in an {items: [...]} envelope.
func decodeBareOrWrapped[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var envelope struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode wrapped list: %w", err)
	}
	return envelope.Items, nil
}

// ListAlerts fetches active breaking-news banners.
func (c *Client) ListAlerts(ctx context.Context) ([]Alert, error) {
	var alerts []Alert
	if err := c.get(ctx, "/api/alerts", &alerts); err != nil {
		return nil, fmt.Errorf("client.ListAlerts: %w", err)
	}
	return alerts, nil
}

// ListNewspapers fetches the print-edition archive.
func (c *Client) ListNewspapers(ctx context.Context) ([]Newspaper, error) {
	var issues []Newspaper
	if err := c.get(ctx, "/api/newspapers", &issues); err != nil {
		return nil, fmt.Errorf("client.ListNewspapers: %w", err)
	}
	return issues, nil
}

// ListComments fetches the comments of one article.
func (c *Client) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var comments []Comment
	if err := c.get(ctx, "/api/comments/"+url.PathEscape(postID), &comments); err != nil {
		return nil, fmt.Errorf("client.ListComments: %w", err)
	}
	return comments, nil
}

// CreateComment posts a comment on an article. Requires a credential.
func (c *Client) CreateComment(ctx context.Context, postID, content string) (*Comment, error) {
	payload := map[string]string{"post_id": postID, "content": content}
	var created Comment
	if err := c.post(ctx, "/api/comments", payload, &created); err != nil {
		return nil, fmt.Errorf("client.CreateComment: %w", err)
	}
	return &created, nil
}

// ContactRequest is the payload of the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"message"`
}

// SubmitContactMessage sends a reader message to the editorial desk.
func (c *Client) SubmitContactMessage(ctx context.Context, req ContactRequest) error {
	if err := c.post(ctx, "/api/contact", req, nil); err != nil {
		return fmt.Errorf("client.SubmitContactMessage: %w", err)
	}
	return nil
}

// Subscribe adds an email address to the newsletter list.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	if err := c.post(ctx, "/api/newsletter", payload, nil); err != nil {
		return fmt.Errorf("client.Subscribe: %w", err)
	}
	return nil
}
