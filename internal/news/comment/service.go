package comment

import (
	"context"
	"strings"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/sec"
	"github.com/zfatbt/tenufa/internal/platform/validate"
	"github.com/zfatbt/tenufa/pkg/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByPost returns an article's thread, oldest first.
func (service *Service) ListByPost(context context.Context, postID string) ([]Comment, error) {
	return service.repo.ListByPost(context, postID)
}

// CreateInput holds a new comment and its authenticated author.
type CreateInput struct {
	PostID   string
	UserID   string
	UserName string
	Content  string
}

func (service *Service) Create(context context.Context, input CreateInput) (*Comment, error) {
	content := strings.TrimSpace(input.Content)

	validator := &validate.Validator{}
	validator.Required("post_id", input.PostID)
	validator.Required("content", content).MaxLen("content", content, ContentMaxLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &Comment{
		ID:       uuid.New(),
		PostID:   input.PostID,
		UserID:   input.UserID,
		UserName: input.UserName,
		Content:  content,
		LikedBy:  []string{},
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ToggleLike adds or removes the user's like on a comment.
//
// A second call by the same user undoes the first, so the client needs no
// separate "unlike" endpoint.
func (service *Service) ToggleLike(context context.Context, commentID, userID string) (*Comment, error) {
	// Try the undo first; if the user had no like on record, add one. Each
	// branch is a single guarded update, so two racing toggles can never
	// both count the same user.
	removed, err := service.repo.RemoveLike(context, commentID, userID)
	if err != nil {
		return nil, err
	}
	if !removed {
		if _, err := service.repo.AddLike(context, commentID, userID); err != nil {
			return nil, err
		}
	}

	// A toggle against a missing comment falls through both updates
	// untouched and surfaces as not found here.
	return service.repo.GetByID(context, commentID)
}

// Delete removes a comment. Owners delete their own; editors delete any.
func (service *Service) Delete(context context.Context, commentID, userID string, role sec.UserRole) error {
	entry, err := service.repo.GetByID(context, commentID)
	if err != nil {
		return err
	}

	if entry.UserID != userID && !role.AtLeast(sec.RoleEditor) {
		return apperr.Forbidden("You may only delete your own comments")
	}

	return service.repo.Delete(context, entry.ID)
}
