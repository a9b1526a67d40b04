package database

import (
	"context"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	expensesCollection     = "expenses"
	userProfilesCollection = "user_profiles"
)

// DB wraps the Mongo client and database handle. It is a process-wide
// resource: connected once in main, injected into services, and
// disconnected on shutdown.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the Mongo connection with command and pool monitors
// registered for Prometheus.
func Connect(ctx context.Context, cfg *config.Config) (*DB, error) {
	log := logger.GetLogger("database")

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMonitor(commandMonitor()).
		SetPoolMonitor(poolMonitor()).
		SetMaxPoolSize(25).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Infow("connected to mongodb", "database", cfg.MongoDatabase)

	return &DB{
		client: client,
		db:     client.Database(cfg.MongoDatabase),
	}, nil
}

// EnsureIndexes creates the collection indexes. Errors are returned so
// main can decide whether to continue; a pre-existing index is not an
// error for the driver.
func EnsureIndexes(ctx context.Context, db *DB) error {
	_, err := db.UserProfiles().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Expenses returns the expenses collection.
func (d *DB) Expenses() *mongo.Collection {
	return d.db.Collection(expensesCollection)
}

// UserProfiles returns the user profiles collection.
func (d *DB) UserProfiles() *mongo.Collection {
	return d.db.Collection(userProfilesCollection)
}

// Ping checks store reachability; used by the readiness probe.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Disconnect tears down the client on shutdown.
func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
