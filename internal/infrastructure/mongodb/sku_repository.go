package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/services/restock-service/internal/domain"
)

const skuCounter = "skuId"

type SKURepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewSKURepository(db *mongo.Database) *SKURepository {
	repo := &SKURepository{
		collection: db.Collection("skus"),
		counters:   db.Collection("counters"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *SKURepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "skuId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "position", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// NextID reserves the next SKU id from the shared counter
func (r *SKURepository) NextID(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.counters, skuCounter)
}

// Save upserts a SKU keyed by its business id
func (r *SKURepository) Save(ctx context.Context, sku *domain.SKU) error {
	sku.UpdatedAt = time.Now().UTC()
	return upsert(ctx, r.collection, bson.M{"skuId": sku.ID}, sku)
}

// FindByID returns the SKU with the given id, or nil when absent
func (r *SKURepository) FindByID(ctx context.Context, id int) (*domain.SKU, error) {
	var sku domain.SKU
	err := r.collection.FindOne(ctx, bson.M{"skuId": id}).Decode(&sku)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// FindAll returns all SKUs in id order
func (r *SKURepository) FindAll(ctx context.Context) ([]*domain.SKU, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, sortAsc("skuId"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var skus []*domain.SKU
	if err := cursor.All(ctx, &skus); err != nil {
		return nil, err
	}
	return skus, nil
}

// FindByPosition returns the SKU holding the given position, or nil when
// the position is free
func (r *SKURepository) FindByPosition(ctx context.Context, positionID string) (*domain.SKU, error) {
	var sku domain.SKU
	err := r.collection.FindOne(ctx, bson.M{"position": positionID}).Decode(&sku)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// Delete removes the SKU. Deleting an absent id is not an error.
func (r *SKURepository) Delete(ctx context.Context, id int) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"skuId": id})
	return err
}
