package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hasini-Stu/tasknew/models"
)

// ErrNotFound is returned when a lookup or delete matches no document.
var ErrNotFound = errors.New("document not found")

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Create inserts a new post with server-assigned timestamps and returns it
// with the assigned id.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// FindQuestions returns all posts with postType "question", newest first.
// Documents are decoded defensively: a missing or malformed createdAt becomes
// "now" so that records not yet flushed by server-side timestamp resolution
// still sort and filter sanely.
func (r *PostRepository) FindQuestions(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"postType": models.PostTypeQuestion}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	now := time.Now()
	var posts []models.Post
	for cur.Next(ctx) {
		posts = append(posts, decodePost(cur.Current, now))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID returns a single post by its ObjectID hex.
func (r *PostRepository) FindByID(ctx context.Context, hexID string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrNotFound
	}
	res := r.col.FindOne(ctx, bson.M{"_id": oid})
	raw, err := res.Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p := decodePost(raw, time.Now())
	return &p, nil
}

// Delete removes a post by its ObjectID hex. ErrNotFound means nothing was
// removed; callers must not touch local state unless this returns nil.
func (r *PostRepository) Delete(ctx context.Context, hexID string) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// decodePost extracts a Post from a raw document, tolerating legacy or
// malformed fields instead of failing the whole read.
func decodePost(raw bson.Raw, now time.Time) models.Post {
	var p models.Post
	if oid, ok := raw.Lookup("_id").ObjectIDOK(); ok {
		p.ID = oid
	}
	if v, ok := raw.Lookup("postType").StringValueOK(); ok {
		p.PostType = v
	}
	if v, ok := raw.Lookup("title").StringValueOK(); ok {
		p.Title = v
	}
	if v, ok := raw.Lookup("image").StringValueOK(); ok {
		p.Image = v
	}
	if v, ok := raw.Lookup("abstract").StringValueOK(); ok {
		p.Abstract = v
	}
	if v, ok := raw.Lookup("articleText").StringValueOK(); ok {
		p.ArticleText = v
	}
	if v, ok := raw.Lookup("authorId").StringValueOK(); ok {
		p.AuthorID = v
	}
	if v, ok := raw.Lookup("authorEmail").StringValueOK(); ok {
		p.AuthorEmail = v
	}
	p.Tags = []string{}
	if arr, ok := raw.Lookup("tags").ArrayOK(); ok {
		if values, err := arr.Values(); err == nil {
			for _, v := range values {
				if s, ok := v.StringValueOK(); ok {
					p.Tags = append(p.Tags, s)
				}
			}
		}
	}
	if t, ok := raw.Lookup("createdAt").TimeOK(); ok {
		p.CreatedAt = t
	} else {
		p.CreatedAt = now
	}
	if t, ok := raw.Lookup("updatedAt").TimeOK(); ok {
		p.UpdatedAt = t
	} else {
		p.UpdatedAt = p.CreatedAt
	}
	return p
}
