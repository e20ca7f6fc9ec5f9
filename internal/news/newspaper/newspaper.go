// Package newspaper manages the archive of weekly PDF paper editions.
package newspaper

import (
	"context"
	"time"
)

// Issue is a single scanned weekly edition.
type Issue struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	PDFURL      string    `json:"pdf_url"`
	PublishedAt time.Time `json:"date"`
	CreatedAt   time.Time `json:"-"`
}

// Repository defines the data access contract for paper editions.
type Repository interface {
	List(context context.Context) ([]Issue, error)
	GetBySlug(context context.Context, slug string) (*Issue, error)
	Create(context context.Context, issue *Issue) error
	Delete(context context.Context, id string) error
}
