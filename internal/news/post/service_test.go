package post

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/pkg/pagination"
	"github.com/zfatbt/tenufa/pkg/pointer"
)

// fakeRepository is an in-memory Repository preserving insertion order.
type fakeRepository struct {
	posts []*Post
}

func (f *fakeRepository) List(_ context.Context, filter Filter, page pagination.Params) ([]Post, int, error) {
	matched := []Post{}
	for _, p := range f.posts {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && p.IsFeatured != *filter.Featured {
			continue
		}
		matched = append(matched, *p)
	}

	total := len(matched)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (f *fakeRepository) GetByShortCode(_ context.Context, code string) (*Post, error) {
	for _, p := range f.posts {
		if p.ShortCode == code {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (f *fakeRepository) Create(_ context.Context, post *Post) error {
	for _, existing := range f.posts {
		if existing.ShortCode == post.ShortCode {
			return apperr.Conflict("short code taken")
		}
	}
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, post *Post) error {
	for i, existing := range f.posts {
		if existing.ID == post.ID {
			f.posts[i] = post
			return nil
		}
	}
	return apperr.NotFound("Post")
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Post")
}

func (f *fakeRepository) IncrementLikes(_ context.Context, id string) (int, error) {
	p, err := f.GetByID(context.Background(), id)
	if err != nil {
		return 0, err
	}
	p.Likes++
	return p.Likes, nil
}

func (f *fakeRepository) AddViews(_ context.Context, id string, delta int) error {
	p, err := f.GetByID(context.Background(), id)
	if err != nil {
		return err
	}
	p.Views += delta
	return nil
}

// fakeViewCounter counts hits in memory.
type fakeViewCounter struct {
	hits map[string]int
}

func (f *fakeViewCounter) Increment(_ context.Context, postID string) error {
	if f.hits == nil {
		f.hits = map[string]int{}
	}
	f.hits[postID]++
	return nil
}

func (f *fakeViewCounter) Drain(_ context.Context) (map[string]int, error) {
	drained := f.hits
	f.hits = map[string]int{}
	return drained, nil
}

func newTestService() (*Service, *fakeRepository, *fakeViewCounter) {
	repo := &fakeRepository{}
	views := &fakeViewCounter{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, views, logger), repo, views
}

func seedArticle(t *testing.T, service *Service, title, category string, featured bool) *Post {
	t.Helper()
	article, err := service.Create(context.Background(), CreateInput{
		Title:      title,
		Content:    "body of " + title,
		Category:   category,
		IsFeatured: featured,
		AuthorID:   "author-1",
		AuthorName: "Maya Levi",
	})
	require.NoError(t, err)
	return article
}

/*
TestService_List verifies the pagination envelope and the category and
featured filters.
*/
func TestService_List(t *testing.T) {
	service, _, _ := newTestService()

	for i := 0; i < 12; i++ {
		seedArticle(t, service, "news item", "local", false)
	}
	seedArticle(t, service, "headline", "sport", true)

	// 1. Full listing paginates: 13 articles at 10 per page → 2 pages
	result, err := service.List(context.Background(), Filter{}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Posts, 10)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)

	// 2. Category filter narrows to the sport section
	result, err = service.List(context.Background(), Filter{Category: "sport"}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "headline", result.Posts[0].Title)

	// 3. Featured filter selects hero-slider articles only
	featured := true
	result, err = service.List(context.Background(), Filter{Featured: &featured}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.True(t, result.Posts[0].IsFeatured)
}

/*
TestService_Create verifies validation and short-link code generation.
*/
func TestService_Create(t *testing.T) {
	service, _, _ := newTestService()

	// 1. A valid article gets an ID and a 6-digit short code
	article := seedArticle(t, service, "opening headline", "local", false)
	assert.NotEmpty(t, article.ID)
	assert.Regexp(t, `^[0-9]{6}$`, article.ShortCode)
	assert.NotNil(t, article.Tags)

	// 2. Missing title is rejected before persistence
	_, err := service.Create(context.Background(), CreateInput{Content: "body", Category: "local"})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 400, appError.HTTPStatus)

	// 3. Tag lists are trimmed and stripped of empties
	tagged, err := service.Create(context.Background(), CreateInput{
		Title: "tagged", Content: "body", Category: "local", AuthorID: "w1", AuthorName: "Writer",
		Tags: []string{" sport ", "", "culture"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sport", "culture"}, tagged.Tags)
}

/*
TestService_Get verifies reads count views without touching the repository
counter until flushed.
*/
func TestService_Get(t *testing.T) {
	service, repo, views := newTestService()
	article := seedArticle(t, service, "viewed article", "local", false)

	for i := 0; i < 3; i++ {
		_, err := service.Get(context.Background(), article.ID)
		require.NoError(t, err)
	}

	// 1. Hits accumulate in the counter, not the store
	assert.Equal(t, 3, views.hits[article.ID])
	assert.Equal(t, 0, repo.posts[0].Views)

	// 2. Flushing folds them into the persistent counter and resets
	require.NoError(t, service.FlushViews(context.Background()))
	assert.Equal(t, 3, repo.posts[0].Views)
	assert.Empty(t, views.hits)
}

/*
TestService_FlushViews_SkipsMissing verifies a deleted article does not stall
the flush of the remaining counters.
*/
func TestService_FlushViews_SkipsMissing(t *testing.T) {
	service, repo, views := newTestService()
	kept := seedArticle(t, service, "kept", "local", false)

	require.NoError(t, views.Increment(context.Background(), kept.ID))
	require.NoError(t, views.Increment(context.Background(), "deleted-post-id"))

	require.NoError(t, service.FlushViews(context.Background()))
	assert.Equal(t, 1, repo.posts[0].Views)
}

/*
TestService_Update verifies partial updates keep omitted fields intact.
*/
func TestService_Update(t *testing.T) {
	service, _, _ := newTestService()
	article := seedArticle(t, service, "original title", "local", false)

	updated, err := service.Update(context.Background(), article.ID, UpdateInput{
		Title:      pointer.To("revised title"),
		IsFeatured: pointer.To(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "revised title", updated.Title)
	assert.True(t, updated.IsFeatured)
	// Omitted fields survive
	assert.Equal(t, "body of original title", updated.Content)
	assert.Equal(t, "local", updated.Category)
}

/*
TestService_GetByShortCode verifies resolution and the fast rejection of
malformed codes.
*/
func TestService_GetByShortCode(t *testing.T) {
	service, _, _ := newTestService()
	article := seedArticle(t, service, "linked article", "local", false)

	found, err := service.GetByShortCode(context.Background(), article.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)

	// Malformed codes never reach the repository
	_, err = service.GetByShortCode(context.Background(), "not-a-code")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

/*
TestService_Like verifies the like counter increments per call.
*/
func TestService_Like(t *testing.T) {
	service, _, _ := newTestService()
	article := seedArticle(t, service, "liked article", "local", false)

	likes, err := service.Like(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = service.Like(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)
}
