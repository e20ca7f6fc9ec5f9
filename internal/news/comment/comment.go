// Package comment implements reader discussion threads under articles.
package comment

import (
	"context"
	"time"
)

// Comment is a single reader comment on an article.
//
// UserName is denormalized at write time so threads render without a join
// and survive account deletion.
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

// ContentMaxLength bounds a single comment body.
const ContentMaxLength = 2000

// Repository defines the data access contract for comments.
type Repository interface {
	ListByPost(context context.Context, postID string) ([]Comment, error)
	GetByID(context context.Context, id string) (*Comment, error)
	Create(context context.Context, comment *Comment) error
	// AddLike records the user's like unless they already liked the
	// comment; RemoveLike undoes it. Both report whether a row changed so
	// the caller can tell a no-op from a hit, and both must be atomic with
	// respect to concurrent toggles on the same comment.
	AddLike(context context.Context, id, userID string) (bool, error)
	RemoveLike(context context.Context, id, userID string) (bool, error)
	Delete(context context.Context, id string) error
}
