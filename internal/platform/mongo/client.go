// Package mongo connects to the document store used by the original deployment
// of this system. Selected at bootstrap when MONGO_URI is set.
package mongo

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	// EnvKeyMongoURI is the environment variable holding the connection string.
	EnvKeyMongoURI = "MONGO_URI"

	defaultDatabase = "finance"
	connectTimeout  = 10 * time.Second
)

// Connect opens a client against MONGO_URI and pings the server.
func Connect(ctx context.Context) (*mongo.Client, error) {
	uri := os.Getenv(EnvKeyMongoURI)
	if uri == "" {
		return nil, fmt.Errorf("%s is not set", EnvKeyMongoURI)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// Database returns the application database, honoring MONGO_DB if set.
func Database(client *mongo.Client) *mongo.Database {
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = defaultDatabase
	}
	return client.Database(name)
}
