// Package post implements the article catalogue: the published news items
// shown on the site's front page, category pages, and article view.
package post

import "time"

// Post represents a published (or draft) news article.
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
	// ShortCode is the 6-digit code behind /p/{code} short links printed
	// in the paper edition.
	ShortCode   string    `json:"short_link_code"`
	PublishedAt time.Time `json:"date"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// ListResult is the paginated envelope returned by the posts list endpoint.
type ListResult struct {
	Posts       []Post `json:"posts"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
}

// Filter narrows a post listing.
type Filter struct {
	Category string
	Tags     []string
	// Featured, when non-nil, selects only featured (true) or only
	// non-featured (false) articles.
	Featured *bool
}

// Field identifiers for validation errors.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldCategory = "category"
	FieldImageURL = "image_url"
	FieldExcerpt  = "excerpt"
)

const (
	// TitleMaxLength bounds headlines; longer ones break the hero slider.
	TitleMaxLength = 200
	// ExcerptMaxLength bounds the teaser text on listing cards.
	ExcerptMaxLength = 500
)
