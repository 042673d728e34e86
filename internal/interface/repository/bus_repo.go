package repository

import (
	"context"
	"regexp"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusRepository implements BusRepository
type MongoBusRepository struct {
	collection *mongo.Collection
}

// NewMongoBusRepository creates a new bus repository
func NewMongoBusRepository(db *mongo.Database) repository.BusRepository {
	collection := db.Collection("buses")

	// Create unique index on bus_reg_no
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"bus_reg_no": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoBusRepository{
		collection: collection,
	}
}

// Upsert creates or refreshes a bus record keyed by registration number
func (r *MongoBusRepository) Upsert(ctx context.Context, bus *entity.Bus) error {
	bus.LastUpdated = time.Now()

	updateDoc := bson.M{
		"bus_reg_no":       bus.BusRegNo,
		"service_category": bus.ServiceCategory,
		"last_updated":     bus.LastUpdated,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"bus_reg_no": bus.BusRegNo}

	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updateDoc}, opts)
	return err
}

// SearchByRegNo matches registrations by case-insensitive substring,
// projecting only the display fields
func (r *MongoBusRepository) SearchByRegNo(ctx context.Context, query string, limit int64) ([]entity.Bus, error) {
	filter := bson.M{
		"bus_reg_no": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"},
	}
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0, "bus_reg_no": 1, "service_category": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var buses []entity.Bus
	if err := cursor.All(ctx, &buses); err != nil {
		return nil, err
	}
	return buses, nil
}
