package repository

import (
	"context"
	"errors"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCrewRepository implements CrewRepository
type MongoCrewRepository struct {
	collection *mongo.Collection
}

// NewMongoCrewRepository creates a new crew repository
func NewMongoCrewRepository(db *mongo.Database) repository.CrewRepository {
	collection := db.Collection("crew")

	// Create unique index on crew_id
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"crew_id": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoCrewRepository{
		collection: collection,
	}
}

// Upsert creates or refreshes a crew record keyed by crew id
func (r *MongoCrewRepository) Upsert(ctx context.Context, member *entity.CrewMember) error {
	member.LastUpdated = time.Now()

	updateDoc := bson.M{
		"crew_id":      member.CrewID,
		"name":         member.Name,
		"phone":        member.Phone,
		"role":         member.Role,
		"last_updated": member.LastUpdated,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"crew_id": member.CrewID}

	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updateDoc}, opts)
	return err
}

// FindByID returns the crew member or entity.ErrNotFound
func (r *MongoCrewRepository) FindByID(ctx context.Context, crewID string) (*entity.CrewMember, error) {
	var member entity.CrewMember
	err := r.collection.FindOne(ctx, bson.M{"crew_id": crewID}).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}
