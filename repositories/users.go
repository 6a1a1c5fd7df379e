package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Hasini-Stu/tasknew/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Create persists a new profile keyed by uid.
func (r *UserRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	_, err := r.col.InsertOne(ctx, profile)
	return err
}

// FindByEmail returns the profile with the given email, or ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByUID returns the profile keyed by uid, or ErrNotFound.
func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateLastLogin sets lastLoginAt. Callers treat failures as best-effort:
// a failed update is logged, never surfaced as a login failure.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, uid string, at time.Time) error {
	_, err := r.col.UpdateByID(ctx, uid, bson.M{"$set": bson.M{"lastLoginAt": at}})
	return err
}
