// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package client

import (
	"time"

	"github.com/zfatbt/tenufa/pkg/session"
)

// Credentials is the response of the login and register endpoints.
type Credentials struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

// Post is a published article.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Excerpt     string    `json:"excerpt,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ImageCredit string    `json:"image_credit,omitempty"`
	AuthorID    string    `json:"author_id,omitempty"`
	AuthorName  string    `json:"author_name"`
	Tags        []string  `json:"tags"`
	IsFeatured  bool      `json:"is_featured"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	ShortCode   string    `json:"short_link_code"`
	PublishedAt time.Time `json:"date"`
}

// PostPage is a page of articles plus its pagination envelope.
type PostPage struct {
	Posts       []Post `json:"posts"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
}

// Slide is one frame of an ad carousel.
type Slide struct {
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

// Ad is a placed advertisement.
type Ad struct {
	ID        string    `json:"id"`
	Area      string    `json:"area"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"is_active"`
	Slides    []Slide   `json:"slides"`
	CreatedAt time.Time `json:"created_at"`
}

// Alert is a breaking-news banner.
type Alert struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Link      string    `json:"link,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Newspaper is a weekly print-edition issue.
type Newspaper struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	PDFURL      string    `json:"pdf_url"`
	PublishedAt time.Time `json:"date"`
}

// Comment is a reader comment on an article.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"liked_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a reader message from the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscriber is a newsletter subscriber.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an account as seen by administrators.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
