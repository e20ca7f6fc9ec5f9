// Package contact collects messages sent through the site's contact form.
package contact

import (
	"context"
	"time"
)

// Message is a single contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// BodyMaxLength bounds the free-text message body.
const BodyMaxLength = 5000

// Repository defines the data access contract for contact messages.
type Repository interface {
	List(context context.Context) ([]Message, error)
	Create(context context.Context, message *Message) error
	MarkRead(context context.Context, id string) error
	Delete(context context.Context, id string) error
}
