// Package ad manages the advertisement placements sold to local businesses.
package ad

import "time"

// Slide is a single creative inside a placement's rotation.
type Slide struct {
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

// Ad represents a placement area on the site with its rotating slides.
//
// Slides persist as a single JSONB column; they are always read and written
// as a unit with their placement.
type Ad struct {
	ID        string    `json:"id"`
	Area      string    `json:"area"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"is_active"`
	Slides    []Slide   `json:"slides"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Placement areas rendered by the web client.
const (
	AreaTop     = "top"
	AreaSidebar = "sidebar"
	AreaInline  = "inline"
	AreaBottom  = "bottom"
)

// Areas lists every valid placement area.
var Areas = []string{AreaTop, AreaSidebar, AreaInline, AreaBottom}
