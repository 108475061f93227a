package scribble

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Dial connects to Mongo, verifies the server is reachable and returns
// the database handle together with a release function for shutdown.
// The handle is meant to be injected into NewMongoUserRepository, not
// stashed in a package variable.
func Dial(ctx context.Context, uri, database string) (*mongo.Database, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(strings.TrimSpace(uri)))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	return client.Database(database), client.Disconnect, nil
}
