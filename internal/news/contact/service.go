package contact

import (
	"context"
	"strings"

	"github.com/zfatbt/tenufa/internal/platform/validate"
	"github.com/zfatbt/tenufa/pkg/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all submissions for the admin inbox, newest first.
func (service *Service) List(context context.Context) ([]Message, error) {
	return service.repo.List(context)
}

// SubmitInput holds a contact-form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// Submit validates and stores a contact-form message.
func (service *Service) Submit(context context.Context, input SubmitInput) (*Message, error) {
	body := strings.TrimSpace(input.Body)

	validator := &validate.Validator{}
	validator.Required("name", input.Name)
	validator.Required("email", input.Email).Email("email", input.Email)
	validator.Required("message", body).MaxLen("message", body, BodyMaxLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	message := &Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Body:    body,
	}

	if err := service.repo.Create(context, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (service *Service) MarkRead(context context.Context, id string) error {
	return service.repo.MarkRead(context, id)
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}
