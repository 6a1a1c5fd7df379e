package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/Hasini-Stu/tasknew/models"
)

// DateFilter narrows posts to a trailing window anchored at "now".
type DateFilter string

const (
	DateFilterNone  DateFilter = ""
	DateFilterToday DateFilter = "today"
	DateFilterWeek  DateFilter = "week"
	DateFilterMonth DateFilter = "month"
)

// TagOption is a filter dropdown entry derived from the tag vocabulary.
type TagOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ApplyFilters narrows posts by title substring (case-insensitive), exact tag
// membership and a date cutoff computed from now. The three predicates are
// independent and compose conjunctively, so the order they are applied in
// never changes the result.
func ApplyFilters(posts []models.Post, searchTerm, selectedTag string, dateFilter DateFilter, now time.Time) []models.Post {
	filtered := make([]models.Post, 0, len(posts))

	needle := strings.ToLower(searchTerm)
	cutoff, hasCutoff := dateCutoff(dateFilter, now)

	for _, p := range posts {
		if searchTerm != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if selectedTag != "" && !p.HasTag(selectedTag) {
			continue
		}
		if hasCutoff && p.CreatedAt.Before(cutoff) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// dateCutoff returns the inclusive lower bound for createdAt, or hasCutoff
// false when no date filter is active.
func dateCutoff(f DateFilter, now time.Time) (time.Time, bool) {
	switch f {
	case DateFilterToday:
		// Start of the current calendar day.
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case DateFilterWeek:
		return now.AddDate(0, 0, -7), true
	case DateFilterMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// DeriveTagOptions builds the deduplicated tag vocabulary across all posts.
// Options are sorted so repeated derivations over the same set are identical.
func DeriveTagOptions(posts []models.Post) []TagOption {
	seen := make(map[string]struct{})
	for _, p := range posts {
		for _, tag := range p.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	options := make([]TagOption, len(tags))
	for i, tag := range tags {
		options[i] = TagOption{Key: tag, Label: tag, Value: tag}
	}
	return options
}
