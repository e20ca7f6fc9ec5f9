package newsletter

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

func (service *Service) List(context context.Context) ([]Subscriber, error) {
	return service.repo.List(context)
}

// Subscribe adds an email to the roster.
//
// Emails are normalized to lowercase so "Reader@" and "reader@" count as
// the same subscription.
func (service *Service) Subscribe(context context.Context, email string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	validator := &validate.Validator{}
	validator.Required("email", email).Email("email", email)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	subscriber := &Subscriber{
		ID:    uuid.New(),
		Email: email,
	}

	if err := service.repo.Create(context, subscriber); err != nil {
		return nil, err
	}

	return subscriber, nil
}

func (service *Service) Unsubscribe(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}
