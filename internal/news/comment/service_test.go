package comment

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/sec"
)

type fakeRepository struct {
	comments map[string]*Comment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{comments: map[string]*Comment{}}
}

func (f *fakeRepository) ListByPost(_ context.Context, postID string) ([]Comment, error) {
	thread := []Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			thread = append(thread, *c)
		}
	}
	return thread, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Comment, error) {
	if c, ok := f.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (f *fakeRepository) Create(_ context.Context, comment *Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

// AddLike and RemoveLike mirror the guarded store updates: a row changes
// only when the membership predicate holds, and a missing comment is a
// silent no-op.

func (f *fakeRepository) AddLike(_ context.Context, id, userID string) (bool, error) {
	c, ok := f.comments[id]
	if !ok || slices.Contains(c.LikedBy, userID) {
		return false, nil
	}
	c.LikedBy = append(c.LikedBy, userID)
	c.Likes++
	return true, nil
}

func (f *fakeRepository) RemoveLike(_ context.Context, id, userID string) (bool, error) {
	c, ok := f.comments[id]
	if !ok || !slices.Contains(c.LikedBy, userID) {
		return false, nil
	}
	c.LikedBy = slices.DeleteFunc(slices.Clone(c.LikedBy), func(liker string) bool { return liker == userID })
	c.Likes--
	return true, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return apperr.NotFound("Comment")
	}
	delete(f.comments, id)
	return nil
}

func seedComment(t *testing.T, service *Service, userID string) *Comment {
	t.Helper()
	entry, err := service.Create(context.Background(), CreateInput{
		PostID:   "post-1",
		UserID:   userID,
		UserName: "Reader",
		Content:  "  great reporting  ",
	})
	require.NoError(t, err)
	return entry
}

/*
TestService_Create verifies trimming and validation of new comments.
*/
func TestService_Create(t *testing.T) {
	service := NewService(newFakeRepository())

	entry := seedComment(t, service, "user-1")
	assert.Equal(t, "great reporting", entry.Content)
	assert.NotNil(t, entry.LikedBy)

	// Whitespace-only content is rejected
	_, err := service.Create(context.Background(), CreateInput{
		PostID: "post-1", UserID: "user-1", UserName: "Reader", Content: "   ",
	})
	require.Error(t, err)
}

/*
TestService_ToggleLike verifies like then unlike by the same user, and that
two users accumulate independently.
*/
func TestService_ToggleLike(t *testing.T) {
	service := NewService(newFakeRepository())
	entry := seedComment(t, service, "author")

	// 1. First toggle likes
	liked, err := service.ToggleLike(context.Background(), entry.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.Contains(t, liked.LikedBy, "user-a")

	// 2. A second user stacks
	liked, err = service.ToggleLike(context.Background(), entry.ID, "user-b")
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)

	// 3. Repeating the first user undoes their like only
	liked, err = service.ToggleLike(context.Background(), entry.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.NotContains(t, liked.LikedBy, "user-a")
	assert.Contains(t, liked.LikedBy, "user-b")
}

/*
TestService_ToggleLike_GuardedUpdates verifies the membership guard in the
repository: a like already on record cannot be counted twice, and removing
a like that is not there changes nothing. This is what keeps concurrent
toggles from losing or duplicating each other's writes.
*/
func TestService_ToggleLike_GuardedUpdates(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	entry := seedComment(t, service, "author")

	// 1. The second add for the same user is a no-op
	changed, err := repo.AddLike(context.Background(), entry.ID, "user-a")
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.AddLike(context.Background(), entry.ID, "user-a")
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := repo.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Likes)

	// 2. Removing an absent like changes nothing
	changed, err = repo.RemoveLike(context.Background(), entry.ID, "user-b")
	require.NoError(t, err)
	assert.False(t, changed)
	stored, err = repo.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Likes)

	// 3. A toggle against a missing comment surfaces as not found
	_, err = service.ToggleLike(context.Background(), "no-such-comment", "user-a")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

/*
TestService_Delete verifies the ownership rule: owners and editors may
delete, other readers may not.
*/
func TestService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		role    sec.UserRole
		wantErr bool
	}{
		{name: "owner deletes own", userID: "owner", role: sec.RoleUser, wantErr: false},
		{name: "editor deletes any", userID: "someone-else", role: sec.RoleEditor, wantErr: false},
		{name: "admin deletes any", userID: "someone-else", role: sec.RoleAdmin, wantErr: false},
		{name: "stranger denied", userID: "someone-else", role: sec.RoleUser, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := NewService(newFakeRepository())
			entry := seedComment(t, service, "owner")

			err := service.Delete(context.Background(), entry.ID, tc.userID, tc.role)
			if tc.wantErr {
				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, 403, appError.HTTPStatus)
				return
			}
			require.NoError(t, err)
		})
	}
}
