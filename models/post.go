package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post types. A post is one of four subtypes; only articles carry mandatory
// abstract/articleText.
const (
	PostTypeQuestion   = "question"
	PostTypeArticle    = "article"
	PostTypeTutorial   = "tutorial"
	PostTypeDiscussion = "discussion"
)

// Post represents a user-authored document in the posts collection.
//
// Field keys are camelCase to stay compatible with documents written by the
// original web client; the collection is consumed, not owned, by this service.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostType    string             `bson:"postType" json:"postType"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Abstract    string             `bson:"abstract,omitempty" json:"abstract,omitempty"`
	ArticleText string             `bson:"articleText,omitempty" json:"articleText,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	AuthorID    string             `bson:"authorId" json:"authorId"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasTag reports whether the post carries the tag (exact match).
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
