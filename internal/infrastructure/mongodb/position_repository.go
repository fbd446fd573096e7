package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/services/restock-service/internal/domain"
)

type PositionRepository struct {
	collection *mongo.Collection
}

func NewPositionRepository(db *mongo.Database) *PositionRepository {
	repo := &PositionRepository{
		collection: db.Collection("positions"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *PositionRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "positionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "aisleId", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Insert stores a new position. A duplicate id surfaces as a write error
// through the unique index.
func (r *PositionRepository) Insert(ctx context.Context, position *domain.Position) error {
	position.UpdatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, position)
	return err
}

// Save upserts a position keyed by its business id
func (r *PositionRepository) Save(ctx context.Context, position *domain.Position) error {
	position.UpdatedAt = time.Now().UTC()
	return upsert(ctx, r.collection, bson.M{"positionId": position.ID}, position)
}

// FindByID returns the position with the given id, or nil when absent
func (r *PositionRepository) FindByID(ctx context.Context, id string) (*domain.Position, error) {
	var position domain.Position
	err := r.collection.FindOne(ctx, bson.M{"positionId": id}).Decode(&position)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// FindAll returns all positions in id order
func (r *PositionRepository) FindAll(ctx context.Context) ([]*domain.Position, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, sortAsc("positionId"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var positions []*domain.Position
	if err := cursor.All(ctx, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// Replace persists a position whose id may have changed, removing the
// document stored under the old id first
func (r *PositionRepository) Replace(ctx context.Context, oldID string, position *domain.Position) error {
	if oldID != position.ID {
		if _, err := r.collection.DeleteOne(ctx, bson.M{"positionId": oldID}); err != nil {
			return err
		}
	}
	return r.Save(ctx, position)
}

// Delete removes the position. Deleting an absent id is not an error.
func (r *PositionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"positionId": id})
	return err
}
