package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Hasini-Stu/tasknew/models"
)

// PostStore is the write side of the posts collection.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
}

// ValidationError is a local, pre-network failure scoped to one form field.
// One error is surfaced at a time; the first failing rule wins.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrNotAuthenticated is returned when a submission has no signed-in author.
var ErrNotAuthenticated = errors.New("you must be logged in to create a post")

// Author is the verified identity a post is attributed to.
type Author struct {
	UID   string
	Email string
}

// SubmitPostInput is the raw submission form. Tags is the comma-separated
// string as typed.
type SubmitPostInput struct {
	PostType    string
	Title       string
	Abstract    string
	ArticleText string
	Image       string
	Tags        string
}

// PostService validates and writes new posts under the current identity.
type PostService struct {
	store PostStore
}

func NewPostService(store PostStore) *PostService {
	return &PostService{store: store}
}

// Submit validates the input and persists the post. Validation order: title,
// then (for articles) abstract and articleText, then authentication. The
// store is never touched when validation fails. Author identity comes from
// the verified session, never from the request body.
//
// The image field is stored as given: if the caller never completed the
// upload step it may hold a bare filename with no backing object. Known
// data-quality gap.
func (s *PostService) Submit(ctx context.Context, in SubmitPostInput, author *Author) (*models.Post, error) {
	postType := strings.TrimSpace(in.PostType)
	if postType == "" {
		postType = models.PostTypeArticle
	}
	if !validPostType(postType) {
		return nil, &ValidationError{Field: "postType", Message: "Unknown post type."}
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "Please enter a title for your post."}
	}

	abstract := strings.TrimSpace(in.Abstract)
	articleText := strings.TrimSpace(in.ArticleText)
	if postType == models.PostTypeArticle {
		if abstract == "" {
			return nil, &ValidationError{Field: "abstract", Message: "Please enter an abstract for your article."}
		}
		if articleText == "" {
			return nil, &ValidationError{Field: "articleText", Message: "Please enter the article text."}
		}
	}

	if author == nil {
		return nil, ErrNotAuthenticated
	}

	post := &models.Post{
		PostType:    postType,
		Title:       title,
		Image:       strings.TrimSpace(in.Image),
		Abstract:    abstract,
		ArticleText: articleText,
		Tags:        SplitTags(in.Tags),
		AuthorID:    author.UID,
		AuthorEmail: author.Email,
	}

	return s.store.Create(ctx, post)
}

// SplitTags splits the comma-separated tags input, trims each token and drops
// empties. The 3-tag limit mentioned in form copy is advisory only and is not
// enforced here.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func validPostType(t string) bool {
	switch t {
	case models.PostTypeQuestion, models.PostTypeArticle, models.PostTypeTutorial, models.PostTypeDiscussion:
		return true
	}
	return false
}
