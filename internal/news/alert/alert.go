// Package alert manages the breaking-news ticker shown above the masthead.
package alert

import (
	"context"
	"time"
)

// Alert is a single ticker message, optionally linking to an article.
type Alert struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Link      string    `json:"link,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Repository defines the data access contract for ticker alerts.
type Repository interface {
	// ListActive returns alerts currently shown, newest first.
	ListActive(context context.Context) ([]Alert, error)
	ListAll(context context.Context) ([]Alert, error)
	GetByID(context context.Context, id string) (*Alert, error)
	Create(context context.Context, alert *Alert) error
	Update(context context.Context, alert *Alert) error
	Delete(context context.Context, id string) error
}
