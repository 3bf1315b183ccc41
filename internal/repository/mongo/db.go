package mongo

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	workspaceCollection = "workspaces"
	todoCollection      = "todos"
)

// DB wraps the MongoDB client and database handle
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to MongoDB and verifies the connection
func NewDB(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.TLSInsecure {
		clientOpts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// EnsureIndexes creates the indexes the data model depends on. The unique
// index on workspace name is what makes concurrent same-name creates safe:
// the lookup-before-insert in the service is a courtesy check, the index is
// the guarantee.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.db.Collection(workspaceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create workspace name index: %w", err)
	}

	_, err = d.db.Collection(todoCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "workspace", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create todo workspace index: %w", err)
	}

	return nil
}

// Ping verifies the database connection
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Close disconnects the client
func (d *DB) Close() error {
	return d.client.Disconnect(context.Background())
}
