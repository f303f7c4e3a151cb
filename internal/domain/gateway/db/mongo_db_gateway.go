package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"todo-api/internal/domain/model"
)

type MongoHealthDBGateway struct {
	Client *mongo.Client
}

var _ HealthDBGateway = (*MongoHealthDBGateway)(nil)

func NewMongoHealthDBGateway(client *mongo.Client) *MongoHealthDBGateway {
	return &MongoHealthDBGateway{Client: client}
}

func (gateway *MongoHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := gateway.Client.Ping(ctx, readpref.Primary()); err != nil {
		return model.NewComponentHealthStatus(model.StatusDown, err.Error())
	}
	return model.NewComponentHealthStatus(model.StatusUp, string(model.StatusUp))
}
