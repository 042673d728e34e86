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

// MongoWaybillRepository implements WaybillRepository
type MongoWaybillRepository struct {
	collection *mongo.Collection
}

// NewMongoWaybillRepository creates a new waybill repository
func NewMongoWaybillRepository(db *mongo.Database) repository.WaybillRepository {
	collection := db.Collection("waybills")

	// Indexes backing the depot-scoped day windows and the bus history view
	ctx := context.Background()
	depotTimeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "depot_id", Value: 1}, {Key: "timestamp", Value: -1}},
	}
	collection.Indexes().CreateOne(ctx, depotTimeIndex)

	busIndex := mongo.IndexModel{
		Keys: bson.M{"busRegNo": 1},
	}
	collection.Indexes().CreateOne(ctx, busIndex)

	return &MongoWaybillRepository{
		collection: collection,
	}
}

// Insert persists a new waybill and returns the generated id
func (r *MongoWaybillRepository) Insert(ctx context.Context, waybill *entity.Waybill) (string, error) {
	if waybill.ID == "" {
		waybill.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, waybill)
	if err != nil {
		return "", err
	}
	return waybill.ID, nil
}

// FindByDepotSince returns a depot's waybills from `since` onward, newest first
func (r *MongoWaybillRepository) FindByDepotSince(ctx context.Context, depotID string, since time.Time) ([]entity.Waybill, error) {
	filter := bson.M{
		"depot_id":  depotID,
		"timestamp": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	return r.findAll(ctx, filter, opts)
}

// FindByDepotBetween returns a depot's waybills within [start, end],
// ascending by scheduled time
func (r *MongoWaybillRepository) FindByDepotBetween(ctx context.Context, depotID string, start, end time.Time) ([]entity.Waybill, error) {
	filter := bson.M{
		"depot_id":  depotID,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.M{"scheduledTime": 1})
	return r.findAll(ctx, filter, opts)
}

// FindByBusRegNo returns all waybills for a registration across depots, newest first
func (r *MongoWaybillRepository) FindByBusRegNo(ctx context.Context, busRegNo string) ([]entity.Waybill, error) {
	filter := bson.M{"busRegNo": busRegNo}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	return r.findAll(ctx, filter, opts)
}

// Search applies the filter, newest first, capped at filter.Limit
func (r *MongoWaybillRepository) Search(ctx context.Context, f entity.SearchFilter) ([]entity.Waybill, error) {
	filter := bson.M{}

	if f.BusRegNo != "" {
		filter["busRegNo"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.BusRegNo), Options: "i"}
	}
	if f.DepotID != "" {
		filter["depot_id"] = f.DepotID
	}
	if f.MovementType != "" {
		filter["movementType"] = f.MovementType
	}
	if f.From != nil && f.To != nil {
		filter["timestamp"] = bson.M{"$gte": *f.From, "$lte": *f.To}
	}

	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return r.findAll(ctx, filter, opts)
}

func (r *MongoWaybillRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]entity.Waybill, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var waybills []entity.Waybill
	if err := cursor.All(ctx, &waybills); err != nil {
		return nil, err
	}
	return waybills, nil
}
