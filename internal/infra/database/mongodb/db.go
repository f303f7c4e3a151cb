package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo-api/pkg/resource"
)

// NewClient builds a mongo client from app.db.mongo. The driver connects lazily,
// so an unreachable server surfaces on the first operation.
func NewClient(ctx context.Context) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(resource.GetString("app.db.mongo.uri")).
		SetConnectTimeout(resource.GetDuration("app.db.mongo.connect-timeout")).
		SetServerSelectionTimeout(resource.GetDuration("app.db.mongo.server-selection-timeout"))

	return mongo.Connect(ctx, clientOptions)
}

// Collection returns the todo collection of the configured database
func Collection(client *mongo.Client) *mongo.Collection {
	return client.
		Database(resource.GetString("app.db.mongo.database")).
		Collection(resource.GetString("app.db.mongo.collection"))
}
