package services

import (
	"context"
	"time"

	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/feed"
	"github.com/Hasini-Stu/tasknew/models"
)

// QuestionSource is the read/delete side of the question listing.
type QuestionSource interface {
	FindQuestions(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, hexID string) error
}

// QuestionService serves the question listing with its compound filters.
type QuestionService struct {
	source QuestionSource
}

func NewQuestionService(source QuestionSource) *QuestionService {
	return &QuestionService{source: source}
}

// List fetches all questions, applies the filters and returns the visible
// set plus the tag vocabulary derived from the full set. A store failure is
// logged and yields an empty listing, not an error: the view degrades to "no
// questions found" rather than breaking.
func (s *QuestionService) List(ctx context.Context, searchTerm, selectedTag string, dateFilter feed.DateFilter) ([]models.Post, []feed.TagOption) {
	questions, err := s.source.FindQuestions(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to fetch questions", logger.Fields{
			"error": err.Error(),
		})
		return []models.Post{}, []feed.TagOption{}
	}

	tags := feed.DeriveTagOptions(questions)
	visible := feed.ApplyFilters(questions, searchTerm, selectedTag, dateFilter, time.Now())
	return visible, tags
}

// Delete removes the question from the store. Errors pass through unchanged
// so callers can distinguish a missing document from a store failure; nothing
// is removed locally unless the remote delete succeeded.
func (s *QuestionService) Delete(ctx context.Context, hexID string) error {
	return s.source.Delete(ctx, hexID)
}
