package post

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/validate"
	"github.com/zfatbt/tenufa/pkg/pagination"
	"github.com/zfatbt/tenufa/pkg/pointer"
	"github.com/zfatbt/tenufa/pkg/shortcode"
	"github.com/zfatbt/tenufa/pkg/slice"
	"github.com/zfatbt/tenufa/pkg/uuid"
)

// normalizeTags trims each tag and drops empties. Never returns nil so the
// tags column and the JSON payload always carry an array.
func normalizeTags(tags []string) []string {
	cleaned := slice.Filter(slice.Map(tags, strings.TrimSpace), func(tag string) bool { return tag != "" })
	if cleaned == nil {
		return []string{}
	}
	return cleaned
}

// shortCodeRetries bounds the attempts to find a free short-link code
// before giving up on the (astronomically unlikely) collision streak.
const shortCodeRetries = 5

type Service struct {
	repo   Repository
	views  ViewCounter
	logger *slog.Logger
}

func NewService(repo Repository, views ViewCounter, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		views:  views,
		logger: logger,
	}
}

// List returns one page of articles matching the filter, together with the
// pagination envelope the web client expects.
func (service *Service) List(context context.Context, filter Filter, page pagination.Params) (*ListResult, error) {
	posts, total, err := service.repo.List(context, filter, page)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Posts:       posts,
		TotalPages:  pagination.TotalPages(total, page.Limit),
		CurrentPage: page.Page,
	}, nil
}

// Get returns a single article and records the view hit.
//
// The view is counted in Redis, not PostgreSQL: a failed count never fails
// the read.
func (service *Service) Get(context context.Context, id string) (*Post, error) {
	article, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	service.countView(context, article.ID)
	return article, nil
}

// GetByShortCode resolves a printed short-link code to its article.
func (service *Service) GetByShortCode(context context.Context, code string) (*Post, error) {
	if !shortcode.IsValid(code) {
		return nil, apperr.NotFound("Post")
	}

	article, err := service.repo.GetByShortCode(context, code)
	if err != nil {
		return nil, err
	}

	service.countView(context, article.ID)
	return article, nil
}

// CreateInput holds the author-provided fields of a new article.
type CreateInput struct {
	Title       string
	Content     string
	Category    string
	Excerpt     string
	ImageURL    string
	ImageCredit string
	Tags        []string
	IsFeatured  bool
	AuthorID    string
	AuthorName  string
}

// Create validates and persists a new article with a fresh short-link code.
func (service *Service) Create(context context.Context, input CreateInput) (*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, TitleMaxLength)
	validator.Required(FieldContent, input.Content)
	validator.Required(FieldCategory, input.Category)
	validator.MaxLen(FieldExcerpt, input.Excerpt, ExcerptMaxLength)
	if input.ImageURL != "" {
		validator.URL(FieldImageURL, input.ImageURL)
	}
	if validator.HasErrors() {
		return nil, validator.Err()
	}

	article := &Post{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Category:    input.Category,
		Excerpt:     input.Excerpt,
		ImageURL:    input.ImageURL,
		ImageCredit: input.ImageCredit,
		AuthorID:    input.AuthorID,
		AuthorName:  input.AuthorName,
		Tags:        normalizeTags(input.Tags),
		IsFeatured:  input.IsFeatured,
		PublishedAt: time.Now(),
	}

	// Short codes are random; retry on the rare unique-constraint hit.
	var err error
	for attempt := 0; attempt < shortCodeRetries; attempt++ {
		article.ShortCode = shortcode.New()
		err = service.repo.Create(context, article)
		if err == nil {
			return article, nil
		}
		if appError := apperr.As(err); appError == nil || appError.HTTPStatus != 409 {
			return nil, err
		}
	}

	return nil, err
}

// UpdateInput carries a partial article update; nil fields stay unchanged.
type UpdateInput struct {
	Title       *string
	Content     *string
	Category    *string
	Excerpt     *string
	ImageURL    *string
	ImageCredit *string
	Tags        []string
	IsFeatured  *bool
}

// Update applies a partial update to an existing article.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Post, error) {
	article, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	article.Title = pointer.Fallback(input.Title, article.Title)
	article.Content = pointer.Fallback(input.Content, article.Content)
	article.Category = pointer.Fallback(input.Category, article.Category)
	article.Excerpt = pointer.Fallback(input.Excerpt, article.Excerpt)
	article.ImageURL = pointer.Fallback(input.ImageURL, article.ImageURL)
	article.ImageCredit = pointer.Fallback(input.ImageCredit, article.ImageCredit)
	article.IsFeatured = pointer.Fallback(input.IsFeatured, article.IsFeatured)
	if input.Tags != nil {
		article.Tags = normalizeTags(input.Tags)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, article.Title).MaxLen(FieldTitle, article.Title, TitleMaxLength)
	validator.Required(FieldContent, article.Content)
	validator.Required(FieldCategory, article.Category)
	if validator.HasErrors() {
		return nil, validator.Err()
	}

	if err := service.repo.Update(context, article); err != nil {
		return nil, err
	}

	return article, nil
}

// Delete removes an article permanently.
func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

// Like bumps the article's like counter and returns the new value.
//
// Anonymous readers may like; the button is rate-limited at the edge, not
// deduplicated per account.
func (service *Service) Like(context context.Context, id string) (int, error) {
	return service.repo.IncrementLikes(context, id)
}

// FlushViews drains the Redis view counters into PostgreSQL.
//
// Called periodically by the background flusher in main; also invoked once
// during graceful shutdown so pending counts survive a restart.
func (service *Service) FlushViews(context context.Context) error {
	pending, err := service.views.Drain(context)
	if err != nil {
		return err
	}

	for postID, delta := range pending {
		if err := service.repo.AddViews(context, postID, delta); err != nil {
			// Keep flushing the rest; one missing article (e.g. deleted
			// since the hit) must not hold the batch hostage.
			service.logger.Warn("view_flush_skipped",
				slog.String("post_id", postID),
				slog.Int("delta", delta),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// countView records a view hit without ever failing the surrounding read.
func (service *Service) countView(context context.Context, postID string) {
	if err := service.views.Increment(context, postID); err != nil {
		service.logger.Warn("view_count_failed",
			slog.String("post_id", postID),
			slog.Any("error", err),
		)
	}
}
