package repository

import (
	"context"
	"regexp"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPlaceRepository implements PlaceRepository
type MongoPlaceRepository struct {
	collection *mongo.Collection
}

// NewMongoPlaceRepository creates a new place repository
func NewMongoPlaceRepository(db *mongo.Database) repository.PlaceRepository {
	return &MongoPlaceRepository{
		collection: db.Collection("places"),
	}
}

// SearchByName matches place names by case-insensitive substring,
// projecting only the display fields
func (r *MongoPlaceRepository) SearchByName(ctx context.Context, query string, limit int64) ([]entity.Place, error) {
	filter := bson.M{
		"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"},
	}
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0, "name": 1, "code": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var places []entity.Place
	if err := cursor.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}
