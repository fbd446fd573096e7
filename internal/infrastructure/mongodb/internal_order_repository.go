package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/services/restock-service/internal/domain"
)

const internalOrderCounter = "internalOrderId"

type InternalOrderRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewInternalOrderRepository(db *mongo.Database) *InternalOrderRepository {
	repo := &InternalOrderRepository{
		collection: db.Collection("internal_orders"),
		counters:   db.Collection("counters"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *InternalOrderRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "state", Value: 1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// NextID reserves the next order id from the shared counter
func (r *InternalOrderRepository) NextID(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.counters, internalOrderCounter)
}

// Save upserts an order keyed by its business id
func (r *InternalOrderRepository) Save(ctx context.Context, order *domain.InternalOrder) error {
	order.UpdatedAt = time.Now().UTC()
	return upsert(ctx, r.collection, bson.M{"orderId": order.ID}, order)
}

// FindByID returns the order with the given id, or nil when absent
func (r *InternalOrderRepository) FindByID(ctx context.Context, id int) (*domain.InternalOrder, error) {
	var order domain.InternalOrder
	err := r.collection.FindOne(ctx, bson.M{"orderId": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll returns all orders in id order
func (r *InternalOrderRepository) FindAll(ctx context.Context) ([]*domain.InternalOrder, error) {
	return r.find(ctx, bson.M{})
}

// FindByState returns the orders currently in the given state
func (r *InternalOrderRepository) FindByState(ctx context.Context, state domain.InternalOrderState) ([]*domain.InternalOrder, error) {
	return r.find(ctx, bson.M{"state": state})
}

func (r *InternalOrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.InternalOrder, error) {
	cursor, err := r.collection.Find(ctx, filter, sortAsc("orderId"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*domain.InternalOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the order. Deleting an absent id is not an error.
func (r *InternalOrderRepository) Delete(ctx context.Context, id int) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"orderId": id})
	return err
}
