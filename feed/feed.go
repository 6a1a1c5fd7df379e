// Package feed implements the question-listing view state: fetching the
// question subset of posts, deriving the tag vocabulary, compound client-side
// filtering, non-optimistic deletion and single-card expansion.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/models"
)

// QuestionStore is the slice of the posts collection the feed reads.
type QuestionStore interface {
	FindQuestions(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, hexID string) error
}

// Feed owns the fetched-questions cache and the ephemeral filter state.
// Single writer, snapshot readers; no operation here is cancellable.
type Feed struct {
	store QuestionStore

	mu          sync.Mutex
	questions   []models.Post
	tags        []TagOption
	searchTerm  string
	selectedTag string
	dateFilter  DateFilter
	expandedID  string
}

func New(store QuestionStore) *Feed {
	return &Feed{store: store}
}

// Refresh reloads all questions (newest first) and rebuilds the tag
// vocabulary. Filter and expansion state reset, as on view re-entry. A store
// failure is logged and leaves the observable state empty; it is not
// propagated to the caller.
func (f *Feed) Refresh(ctx context.Context) {
	questions, err := f.store.FindQuestions(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to fetch questions", logger.Fields{
			"error": err.Error(),
		})
		questions = nil
	}
	tags := DeriveTagOptions(questions)

	f.mu.Lock()
	f.questions = questions
	f.tags = tags
	f.searchTerm = ""
	f.selectedTag = ""
	f.dateFilter = DateFilterNone
	f.expandedID = ""
	f.mu.Unlock()
}

// Questions returns the full fetched set, unfiltered.
func (f *Feed) Questions() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Post, len(f.questions))
	copy(out, f.questions)
	return out
}

// AvailableTags returns the derived tag vocabulary.
func (f *Feed) AvailableTags() []TagOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]TagOption, len(f.tags))
	copy(out, f.tags)
	return out
}

func (f *Feed) SetSearchTerm(term string) {
	f.mu.Lock()
	f.searchTerm = term
	f.mu.Unlock()
}

func (f *Feed) SetSelectedTag(tag string) {
	f.mu.Lock()
	f.selectedTag = tag
	f.mu.Unlock()
}

func (f *Feed) SetDateFilter(filter DateFilter) {
	f.mu.Lock()
	f.dateFilter = filter
	f.mu.Unlock()
}

// Visible recomputes the filtered list from the current filter state. It runs
// on every relevant state change; there is no debouncing.
func (f *Feed) Visible() []models.Post {
	f.mu.Lock()
	// Copy the elements, not just the header: Delete compacts the backing
	// array in place and a bare header would alias it after unlock.
	questions := make([]models.Post, len(f.questions))
	copy(questions, f.questions)
	term, tag, date := f.searchTerm, f.selectedTag, f.dateFilter
	f.mu.Unlock()

	return ApplyFilters(questions, term, tag, date, time.Now())
}

// Delete removes the question remotely, then from the local cache. On remote
// failure the local cache is left untouched, so remote and local state stay
// consistent with each other.
func (f *Feed) Delete(ctx context.Context, hexID string) error {
	if err := f.store.Delete(ctx, hexID); err != nil {
		return err
	}

	f.mu.Lock()
	kept := f.questions[:0]
	for _, q := range f.questions {
		if q.ID.Hex() != hexID {
			kept = append(kept, q)
		}
	}
	f.questions = kept
	if f.expandedID == hexID {
		f.expandedID = ""
	}
	f.mu.Unlock()
	return nil
}

// ToggleExpanded expands the card with the given id, collapsing any other.
// Toggling the already-expanded id collapses it.
func (f *Feed) ToggleExpanded(hexID string) {
	f.mu.Lock()
	if f.expandedID == hexID {
		f.expandedID = ""
	} else {
		f.expandedID = hexID
	}
	f.mu.Unlock()
}

// ExpandedID returns the currently expanded card id, or "".
func (f *Feed) ExpandedID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expandedID
}
