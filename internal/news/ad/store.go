package ad

import "context"

// Repository defines the data access contract for ad placements.
type Repository interface {
	// ListActive returns active placements, optionally narrowed to one area.
	ListActive(context context.Context, area string) ([]Ad, error)
	// ListAll returns every placement for the admin dashboard.
	ListAll(context context.Context) ([]Ad, error)
	GetByID(context context.Context, id string) (*Ad, error)
	Create(context context.Context, ad *Ad) error
	Update(context context.Context, ad *Ad) error
	Delete(context context.Context, id string) error
}
