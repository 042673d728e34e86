package repository

import (
	"context"
	"errors"
	"regexp"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDepotRepository implements DepotRepository
type MongoDepotRepository struct {
	collection *mongo.Collection
}

// NewMongoDepotRepository creates a new depot repository
func NewMongoDepotRepository(db *mongo.Database) repository.DepotRepository {
	return &MongoDepotRepository{
		collection: db.Collection("depots"),
	}
}

// FindByStationMasterID looks up a depot login by station master id,
// case-insensitive exact match
func (r *MongoDepotRepository) FindByStationMasterID(ctx context.Context, stationMasterID string) (*entity.Depot, error) {
	filter := bson.M{
		"station_master_id": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(stationMasterID) + "$",
			Options: "i",
		},
	}

	var depot entity.Depot
	err := r.collection.FindOne(ctx, filter).Decode(&depot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &depot, nil
}
