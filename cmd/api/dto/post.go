package dto

import "github.com/Hasini-Stu/tasknew/feed"

// CreatePostRequest is the post submission payload. Tags arrive as a single
// comma-separated string, as typed into the form. Author fields are never
// read from the request; they come from the verified token.
type CreatePostRequest struct {
	PostType    string `json:"postType"`
	Title       string `json:"title"`
	Abstract    string `json:"abstract"`
	ArticleText string `json:"articleText"`
	Image       string `json:"image"`
	Tags        string `json:"tags"`
}

// PostDTO is the public post shape.
type PostDTO struct {
	ID          string   `json:"id"`
	PostType    string   `json:"postType"`
	Title       string   `json:"title"`
	Image       string   `json:"image,omitempty"`
	Abstract    string   `json:"abstract,omitempty"`
	ArticleText string   `json:"articleText,omitempty"`
	Tags        []string `json:"tags"`
	AuthorEmail string   `json:"authorEmail"`
	CreatedAt   string   `json:"createdAt"`
}

// QuestionListDTO is the question listing response: the filtered questions
// plus the tag vocabulary usable as filter options.
type QuestionListDTO struct {
	Items []PostDTO        `json:"items"`
	Tags  []feed.TagOption `json:"tags"`
}

// UploadResponseDTO returns the durable URL of an uploaded image.
type UploadResponseDTO struct {
	URL string `json:"url"`
}
