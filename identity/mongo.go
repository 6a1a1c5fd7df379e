package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// account is the identity service's private credential record. The bcrypt
// hash here is the canonical credential; the application-level digest stored
// on user profiles is redundant and never consulted by this service.
type account struct {
	UID          string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	Disabled     bool      `bson:"disabled"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// MongoService implements Service over an identity_accounts collection.
type MongoService struct {
	col *mongo.Collection
}

func NewMongoService(db *mongo.Database) *MongoService {
	return &MongoService{col: db.Collection("identity_accounts")}
}

func (s *MongoService) CreateAccount(ctx context.Context, email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return Identity{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return Identity{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}

	acc := account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if _, err := s.col.InsertOne(ctx, acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Identity{}, ErrEmailInUse
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return Identity{UID: acc.UID, Email: acc.Email}, nil
}

func (s *MongoService) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	email = strings.TrimSpace(email)

	var acc account
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Identity{}, ErrUserNotFound
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if acc.Disabled {
		return Identity{}, ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrWrongPassword
	}
	return Identity{UID: acc.UID, Email: acc.Email}, nil
}
