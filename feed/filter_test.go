package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hasini-Stu/tasknew/feed"
	"github.com/Hasini-Stu/tasknew/models"
)

var now = time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC)

func post(title string, tags []string, createdAt time.Time) models.Post {
	return models.Post{
		PostType:  models.PostTypeQuestion,
		Title:     title,
		Tags:      tags,
		CreatedAt: createdAt,
	}
}

func samplePosts() []models.Post {
	return []models.Post{
		post("How do goroutines work?", []string{"go", "concurrency"}, now.Add(-2*time.Hour)),
		post("Intro to Go modules", []string{"go"}, now.Add(-3*24*time.Hour)),
		post("Spring dependency injection", []string{"java", "spring"}, now.Add(-10*24*time.Hour)),
		post("Why is my Java app slow?", []string{"java"}, now.Add(-45*24*time.Hour)),
	}
}

func TestApplyFiltersIdentityWhenNoFiltersActive(t *testing.T) {
	posts := samplePosts()
	got := feed.ApplyFilters(posts, "", "", feed.DateFilterNone, now)
	assert.Equal(t, posts, got)
}

func TestApplyFiltersTitleSubstringCaseInsensitive(t *testing.T) {
	got := feed.ApplyFilters(samplePosts(), "GO", "", feed.DateFilterNone, now)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Contains(t, []string{"How do goroutines work?", "Intro to Go modules"}, p.Title)
	}
}

func TestApplyFiltersTagExactMatch(t *testing.T) {
	got := feed.ApplyFilters(samplePosts(), "", "java", feed.DateFilterNone, now)
	assert.Len(t, got, 2)

	// "jav" is not a tag; membership is exact, not substring.
	got = feed.ApplyFilters(samplePosts(), "", "jav", feed.DateFilterNone, now)
	assert.Empty(t, got)
}

func TestApplyFiltersDateCutoffs(t *testing.T) {
	posts := samplePosts()

	today := feed.ApplyFilters(posts, "", "", feed.DateFilterToday, now)
	assert.Len(t, today, 1)
	assert.Equal(t, "How do goroutines work?", today[0].Title)

	week := feed.ApplyFilters(posts, "", "", feed.DateFilterWeek, now)
	assert.Len(t, week, 2)

	month := feed.ApplyFilters(posts, "", "", feed.DateFilterMonth, now)
	assert.Len(t, month, 3)
}

func TestApplyFiltersTodayIsStartOfCalendarDay(t *testing.T) {
	morning := post("early question", nil, time.Date(2025, 9, 15, 0, 0, 1, 0, time.UTC))
	yesterday := post("old question", nil, time.Date(2025, 9, 14, 23, 59, 59, 0, time.UTC))

	got := feed.ApplyFilters([]models.Post{morning, yesterday}, "", "", feed.DateFilterToday, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "early question", got[0].Title)
}

// The three predicates are independent, so applying them one at a time in any
// order must yield the same set as applying them together.
func TestApplyFiltersOrderIndependent(t *testing.T) {
	posts := samplePosts()
	search, tag, date := "o", "go", feed.DateFilterWeek

	applySearch := func(in []models.Post) []models.Post {
		return feed.ApplyFilters(in, search, "", feed.DateFilterNone, now)
	}
	applyTag := func(in []models.Post) []models.Post {
		return feed.ApplyFilters(in, "", tag, feed.DateFilterNone, now)
	}
	applyDate := func(in []models.Post) []models.Post {
		return feed.ApplyFilters(in, "", "", date, now)
	}

	combined := feed.ApplyFilters(posts, search, tag, date, now)

	steps := []func([]models.Post) []models.Post{applySearch, applyTag, applyDate}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, order := range orders {
		result := posts
		for _, i := range order {
			result = steps[i](result)
		}
		assert.Equal(t, combined, result, "order %v", order)
	}
}

func TestDeriveTagOptionsDeduplicates(t *testing.T) {
	posts := []models.Post{
		post("A", []string{"java", "spring"}, now),
		post("B", []string{"java"}, now),
	}

	options := feed.DeriveTagOptions(posts)
	assert.Equal(t, []feed.TagOption{
		{Key: "java", Label: "java", Value: "java"},
		{Key: "spring", Label: "spring", Value: "spring"},
	}, options)
}

func TestDeriveTagOptionsEmptyForNoPosts(t *testing.T) {
	assert.Empty(t, feed.DeriveTagOptions(nil))
}
