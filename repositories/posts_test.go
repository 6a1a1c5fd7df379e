package repositories

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hasini-Stu/tasknew/models"
)

func rawDoc(t *testing.T, doc bson.D) bson.Raw {
	t.Helper()
	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}
	return bson.Raw(data)
}

func TestDecodePostWellFormedDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	createdAt := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC)

	p := decodePost(rawDoc(t, bson.D{
		{Key: "_id", Value: oid},
		{Key: "postType", Value: models.PostTypeQuestion},
		{Key: "title", Value: "How do indexes work?"},
		{Key: "tags", Value: bson.A{"go", "mongodb"}},
		{Key: "authorId", Value: "uid-1"},
		{Key: "authorEmail", Value: "ada@example.com"},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(createdAt)},
	}), now)

	if p.ID != oid {
		t.Fatalf("expected id %s, got %s", oid.Hex(), p.ID.Hex())
	}
	if p.Title != "How do indexes work?" {
		t.Fatalf("unexpected title %q", p.Title)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "go" || p.Tags[1] != "mongodb" {
		t.Fatalf("unexpected tags %v", p.Tags)
	}
	if !p.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected createdAt %v, got %v", createdAt, p.CreatedAt)
	}
	// No updatedAt in the document; it follows createdAt.
	if !p.UpdatedAt.Equal(createdAt) {
		t.Fatalf("expected updatedAt to default to createdAt, got %v", p.UpdatedAt)
	}
}

func TestDecodePostMissingCreatedAtFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC)

	p := decodePost(rawDoc(t, bson.D{
		{Key: "postType", Value: models.PostTypeQuestion},
		{Key: "title", Value: "no timestamp yet"},
	}), now)

	if !p.CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt fallback %v, got %v", now, p.CreatedAt)
	}
	if !p.UpdatedAt.Equal(now) {
		t.Fatalf("expected updatedAt fallback %v, got %v", now, p.UpdatedAt)
	}
}

func TestDecodePostNonDatetimeCreatedAtFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC)

	// A legacy document carrying createdAt as a string instead of a datetime.
	p := decodePost(rawDoc(t, bson.D{
		{Key: "title", Value: "legacy record"},
		{Key: "createdAt", Value: "2023-08-01T00:00:00Z"},
	}), now)

	if !p.CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt fallback %v, got %v", now, p.CreatedAt)
	}
}

func TestDecodePostKeepsOnlyStringTags(t *testing.T) {
	now := time.Now()

	p := decodePost(rawDoc(t, bson.D{
		{Key: "title", Value: "mixed tags"},
		{Key: "tags", Value: bson.A{"go", int32(7), bson.D{{Key: "nested", Value: true}}, "mongodb"}},
	}), now)

	if len(p.Tags) != 2 || p.Tags[0] != "go" || p.Tags[1] != "mongodb" {
		t.Fatalf("expected the string tags only, got %v", p.Tags)
	}
}

func TestDecodePostTagsNeverNil(t *testing.T) {
	p := decodePost(rawDoc(t, bson.D{
		{Key: "title", Value: "no tags field"},
	}), time.Now())

	if p.Tags == nil {
		t.Fatal("tags must decode to an empty slice, not nil")
	}
	if len(p.Tags) != 0 {
		t.Fatalf("expected no tags, got %v", p.Tags)
	}
}
