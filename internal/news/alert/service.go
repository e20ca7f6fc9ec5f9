package alert

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

func (service *Service) ListActive(context context.Context) ([]Alert, error) {
	return service.repo.ListActive(context)
}

func (service *Service) ListAll(context context.Context) ([]Alert, error) {
	return service.repo.ListAll(context)
}

type CreateInput struct {
	Text     string
	Link     string
	IsActive bool
}

func (service *Service) Create(context context.Context, input CreateInput) (*Alert, error) {
	validator := &validate.Validator{}
	validator.Required("text", input.Text)
	if input.Link != "" {
		validator.URL("link", input.Link)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	ticker := &Alert{
		ID:       uuid.New(),
		Text:     input.Text,
		Link:     input.Link,
		IsActive: input.IsActive,
	}

	if err := service.repo.Create(context, ticker); err != nil {
		return nil, err
	}

	return ticker, nil
}

type UpdateInput struct {
	Text     *string
	Link     *string
	IsActive *bool
}

func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Alert, error) {
	ticker, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	ticker.Text = pointer.Fallback(input.Text, ticker.Text)
	ticker.Link = pointer.Fallback(input.Link, ticker.Link)
	ticker.IsActive = pointer.Fallback(input.IsActive, ticker.IsActive)

	validator := &validate.Validator{}
	validator.Required("text", ticker.Text)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, ticker); err != nil {
		return nil, err
	}

	return ticker, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}
