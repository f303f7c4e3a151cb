package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type mongoTodoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (document mongoTodoDocument) toEntity() *entity.Todo {
	return &entity.Todo{
		ID:          document.ID.Hex(),
		Title:       document.Title,
		Description: document.Description,
		CreatedAt:   document.CreatedAt,
		UpdatedAt:   document.UpdatedAt,
	}
}

type MongoTodoGateway struct {
	Collection *mongo.Collection
}

var _ TodoGateway = (*MongoTodoGateway)(nil)

func NewMongoTodoGateway(collection *mongo.Collection) *MongoTodoGateway {
	return &MongoTodoGateway{Collection: collection}
}

func (gateway *MongoTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	cursor, err := gateway.Collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var documents []mongoTodoDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}

	results := make([]entity.Todo, 0, len(documents))
	for _, document := range documents {
		results = append(results, *document.toEntity())
	}
	return results, nil
}

func (gateway *MongoTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	objectID, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	var document mongoTodoDocument
	err = gateway.Collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&document)
	return decodeResult(document, err)
}

func (gateway *MongoTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	now := mongoNow()
	document := mongoTodoDocument{
		ID:          primitive.NewObjectID(),
		Title:       todo.Title,
		Description: todo.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := gateway.Collection.InsertOne(ctx, document); err != nil {
		return nil, err
	}
	return document.toEntity(), nil
}

func (gateway *MongoTodoGateway) UpdateByID(ctx context.Context, id string, updated entity.Todo) (*entity.Todo, error) {
	objectID, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: updated.Title},
		{Key: "description", Value: updated.Description},
		{Key: "updatedAt", Value: mongoNow()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document mongoTodoDocument
	err = gateway.Collection.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: objectID}}, update, opts).Decode(&document)
	return decodeResult(document, err)
}

func (gateway *MongoTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	objectID, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	var document mongoTodoDocument
	err = gateway.Collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&document)
	return decodeResult(document, err)
}

func toObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", model.ErrInvalidTodoID, id)
	}
	return objectID, nil
}

func decodeResult(document mongoTodoDocument, err error) (*entity.Todo, error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return document.toEntity(), nil
}

// mongoNow truncates to the millisecond precision BSON dates are stored with
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
