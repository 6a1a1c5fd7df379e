package db

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Hasini-Stu/tasknew/config"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.Mongo.DBName
		if dbName == "" {
			dbName = "devdeakin"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		log.Println("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// posts: (post_type, created_at desc) serves the question listing query
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "postType", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_post_type_created_at_desc"),
		}
		if _, err := d.Collection("posts").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// users: unique email backs the registration duplicate pre-check
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}
		if _, err := d.Collection("users").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// identity_accounts: unique email, the identity service's own lookup key
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_account_email").SetUnique(true),
		}
		if _, err := d.Collection("identity_accounts").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	return nil
}
