package feed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hasini-Stu/tasknew/feed"
	"github.com/Hasini-Stu/tasknew/models"
)

type fakeQuestionStore struct {
	questions []models.Post
	findErr   error
	deleteErr error
	deleted   []string
}

func (s *fakeQuestionStore) FindQuestions(ctx context.Context) ([]models.Post, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.questions, nil
}

func (s *fakeQuestionStore) Delete(ctx context.Context, hexID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, hexID)
	return nil
}

func storedQuestion(title string, tags ...string) models.Post {
	return models.Post{
		ID:        primitive.NewObjectID(),
		PostType:  models.PostTypeQuestion,
		Title:     title,
		Tags:      tags,
		CreatedAt: now,
	}
}

func TestFeedRefreshPopulatesQuestionsAndTags(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Post{
		storedQuestion("first", "go"),
		storedQuestion("second", "go", "mongodb"),
	}}
	f := feed.New(store)

	f.Refresh(context.Background())

	assert.Len(t, f.Questions(), 2)
	tags := f.AvailableTags()
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Value)
	assert.Equal(t, "mongodb", tags[1].Value)
}

func TestFeedRefreshFailureLeavesStateEmpty(t *testing.T) {
	store := &fakeQuestionStore{findErr: errors.New("connection reset")}
	f := feed.New(store)

	f.Refresh(context.Background())

	assert.Empty(t, f.Questions())
	assert.Empty(t, f.AvailableTags())
}

func TestFeedRefreshResetsFiltersAndExpansion(t *testing.T) {
	q := storedQuestion("first", "go")
	store := &fakeQuestionStore{questions: []models.Post{q}}
	f := feed.New(store)
	f.Refresh(context.Background())

	f.SetSearchTerm("nothing matches this")
	f.SetSelectedTag("missing")
	f.SetDateFilter(feed.DateFilterToday)
	f.ToggleExpanded(q.ID.Hex())
	require.Empty(t, f.Visible())

	f.Refresh(context.Background())

	assert.Len(t, f.Visible(), 1)
	assert.Equal(t, "", f.ExpandedID())
}

func TestFeedDeleteRemovesRemoteThenLocal(t *testing.T) {
	keep := storedQuestion("keep", "go")
	drop := storedQuestion("drop", "go")
	store := &fakeQuestionStore{questions: []models.Post{keep, drop}}
	f := feed.New(store)
	f.Refresh(context.Background())

	err := f.Delete(context.Background(), drop.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, []string{drop.ID.Hex()}, store.deleted)
	questions := f.Questions()
	require.Len(t, questions, 1)
	assert.Equal(t, "keep", questions[0].Title)
}

func TestFeedDeleteRemoteFailureLeavesLocalUntouched(t *testing.T) {
	q := storedQuestion("survivor", "go")
	store := &fakeQuestionStore{questions: []models.Post{q}}
	f := feed.New(store)
	f.Refresh(context.Background())

	store.deleteErr = errors.New("write conflict")
	err := f.Delete(context.Background(), q.ID.Hex())

	require.Error(t, err)
	assert.Len(t, f.Questions(), 1)
}

func TestFeedDeleteCollapsesDeletedCard(t *testing.T) {
	q := storedQuestion("expanded", "go")
	store := &fakeQuestionStore{questions: []models.Post{q}}
	f := feed.New(store)
	f.Refresh(context.Background())
	f.ToggleExpanded(q.ID.Hex())

	require.NoError(t, f.Delete(context.Background(), q.ID.Hex()))
	assert.Equal(t, "", f.ExpandedID())
}

func TestFeedToggleExpandedSingleCard(t *testing.T) {
	f := feed.New(&fakeQuestionStore{})

	f.ToggleExpanded("a")
	assert.Equal(t, "a", f.ExpandedID())

	// Expanding another card collapses the first.
	f.ToggleExpanded("b")
	assert.Equal(t, "b", f.ExpandedID())

	// Toggling the expanded card collapses it.
	f.ToggleExpanded("b")
	assert.Equal(t, "", f.ExpandedID())
}

func TestFeedVisibleIsSafeAgainstConcurrentDelete(t *testing.T) {
	posts := make([]models.Post, 0, 64)
	for i := 0; i < 64; i++ {
		posts = append(posts, storedQuestion("q", "go"))
	}
	store := &fakeQuestionStore{questions: posts}
	f := feed.New(store)
	f.Refresh(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			f.Visible()
		}
	}()

	// Deletes compact the cache in place; readers must never observe that.
	for _, p := range posts {
		require.NoError(t, f.Delete(context.Background(), p.ID.Hex()))
	}
	<-done

	assert.Empty(t, f.Visible())
}

func TestFeedVisibleAppliesCurrentFilters(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Post{
		storedQuestion("go question", "go"),
		storedQuestion("java question", "java"),
	}}
	f := feed.New(store)
	f.Refresh(context.Background())

	f.SetSelectedTag("java")
	visible := f.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "java question", visible[0].Title)

	f.SetSelectedTag("")
	f.SetSearchTerm("GO")
	visible = f.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "go question", visible[0].Title)
}
