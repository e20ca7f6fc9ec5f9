// Package newsletter manages the mailing-list subscriber roster.
package newsletter

import (
	"context"
	"time"
)

// Subscriber is one mailing-list member.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository defines the data access contract for subscribers.
type Repository interface {
	List(context context.Context) ([]Subscriber, error)
	// Create persists a subscriber; a duplicate email yields [apperr.Conflict].
	Create(context context.Context, subscriber *Subscriber) error
	Delete(context context.Context, id string) error
}
