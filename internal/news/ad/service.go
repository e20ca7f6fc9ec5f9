package ad

import (
	"context"

	"github.com/zfatbt/tenufa/internal/platform/validate"
	"github.com/zfatbt/tenufa/pkg/pointer"
	"github.com/zfatbt/tenufa/pkg/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListActive returns the placements the public site renders.
func (service *Service) ListActive(context context.Context, area string) ([]Ad, error) {
	return service.repo.ListActive(context, area)
}

// ListAll returns every placement for the admin dashboard.
func (service *Service) ListAll(context context.Context) ([]Ad, error) {
	return service.repo.ListAll(context)
}

// CreateInput holds the fields of a new placement.
type CreateInput struct {
	Area     string
	Title    string
	IsActive bool
	Slides   []Slide
}

func (service *Service) Create(context context.Context, input CreateInput) (*Ad, error) {
	if err := validateAd(input.Area, input.Title, input.Slides); err != nil {
		return nil, err
	}

	placement := &Ad{
		ID:       uuid.New(),
		Area:     input.Area,
		Title:    input.Title,
		IsActive: input.IsActive,
		Slides:   input.Slides,
	}
	if placement.Slides == nil {
		placement.Slides = []Slide{}
	}

	if err := service.repo.Create(context, placement); err != nil {
		return nil, err
	}

	return placement, nil
}

// UpdateInput carries a partial placement update; nil fields stay unchanged.
type UpdateInput struct {
	Area     *string
	Title    *string
	IsActive *bool
	Slides   []Slide
}

func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Ad, error) {
	placement, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	placement.Area = pointer.Fallback(input.Area, placement.Area)
	placement.Title = pointer.Fallback(input.Title, placement.Title)
	placement.IsActive = pointer.Fallback(input.IsActive, placement.IsActive)
	if input.Slides != nil {
		placement.Slides = input.Slides
	}

	if err := validateAd(placement.Area, placement.Title, placement.Slides); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, placement); err != nil {
		return nil, err
	}

	return placement, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

func validateAd(area, title string, slides []Slide) error {
	validator := &validate.Validator{}
	validator.Required("title", title)
	validator.OneOf("area", area, Areas...)
	for _, slide := range slides {
		if slide.ImageURL != "" {
			validator.URL("slides.image_url", slide.ImageURL)
		}
		if slide.LinkURL != "" {
			validator.URL("slides.link_url", slide.LinkURL)
		}
		if slide.VideoURL != "" {
			validator.URL("slides.video_url", slide.VideoURL)
		}
	}
	return validator.Err()
}
