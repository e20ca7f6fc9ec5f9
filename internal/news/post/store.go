package post

import (
	"context"

	"github.com/zfatbt/tenufa/pkg/pagination"
)

// Repository defines the data access contract for articles.
type Repository interface {
	List(context context.Context, filter Filter, page pagination.Params) ([]Post, int, error)
	GetByID(context context.Context, id string) (*Post, error)
	GetByShortCode(context context.Context, code string) (*Post, error)
	Create(context context.Context, post *Post) error
	Update(context context.Context, post *Post) error
	Delete(context context.Context, id string) error
	// IncrementLikes bumps the like counter and returns the new value.
	IncrementLikes(context context.Context, id string) (int, error)
	// AddViews folds drained view counts into the persistent counter.
	AddViews(context context.Context, id string, delta int) error
}

// ViewCounter accumulates article view hits outside the hot request path.
//
// The Redis implementation (store_redis.go) absorbs the write burst of a
// front-page article; a background flusher drains it into PostgreSQL.
type ViewCounter interface {
	Increment(context context.Context, postID string) error
	// Drain atomically reads-and-resets all pending counters, returning
	// postID → hit count since the previous drain.
	Drain(context context.Context) (map[string]int, error)
}
