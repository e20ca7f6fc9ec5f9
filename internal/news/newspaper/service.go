package newspaper

import (
	"context"
	"time"

	"github.com/zfatbt/tenufa/internal/platform/validate"
	"github.com/zfatbt/tenufa/pkg/slug"
	"github.com/zfatbt/tenufa/pkg/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the edition archive, newest first.
func (service *Service) List(context context.Context) ([]Issue, error) {
	return service.repo.List(context)
}

// GetBySlug returns a single edition by its URL slug.
func (service *Service) GetBySlug(context context.Context, issueSlug string) (*Issue, error) {
	return service.repo.GetBySlug(context, issueSlug)
}

// PublishInput holds the fields of a new edition.
type PublishInput struct {
	Title       string
	PDFURL      string
	PublishedAt time.Time
}

// Publish validates and stores a new weekly edition.
//
// Hebrew titles usually slugify to just their digits; a title with no
// sluggable characters at all falls back to the issue ID.
func (service *Service) Publish(context context.Context, input PublishInput) (*Issue, error) {
	validator := &validate.Validator{}
	validator.Required("title", input.Title)
	validator.Required("pdf_url", input.PDFURL).URL("pdf_url", input.PDFURL)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	issue := &Issue{
		ID:          uuid.New(),
		Title:       input.Title,
		PDFURL:      input.PDFURL,
		PublishedAt: input.PublishedAt,
	}
	if issue.PublishedAt.IsZero() {
		issue.PublishedAt = time.Now()
	}

	issue.Slug = slug.From(input.Title)
	if issue.Slug == "" {
		issue.Slug = issue.ID
	}

	if err := service.repo.Create(context, issue); err != nil {
		return nil, err
	}

	return issue, nil
}

// Remove deletes an edition from the archive.
func (service *Service) Remove(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}
