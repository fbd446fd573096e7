package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/services/restock-service/internal/domain"
)

const restockOrderCounter = "restockOrderId"

type RestockOrderRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewRestockOrderRepository(db *mongo.Database) *RestockOrderRepository {
	repo := &RestockOrderRepository{
		collection: db.Collection("restock_orders"),
		counters:   db.Collection("counters"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *RestockOrderRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "state", Value: 1}}},
		{Keys: bson.D{{Key: "supplierId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// NextID reserves the next order id from the shared counter
func (r *RestockOrderRepository) NextID(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.counters, restockOrderCounter)
}

// Save upserts an order keyed by its business id
func (r *RestockOrderRepository) Save(ctx context.Context, order *domain.RestockOrder) error {
	order.UpdatedAt = time.Now().UTC()
	return upsert(ctx, r.collection, bson.M{"orderId": order.ID}, order)
}

// FindByID returns the order with the given id, or nil when absent
func (r *RestockOrderRepository) FindByID(ctx context.Context, id int) (*domain.RestockOrder, error) {
	var order domain.RestockOrder
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
func (r *RestockOrderRepository) FindAll(ctx context.Context) ([]*domain.RestockOrder, error) {
	return r.find(ctx, bson.M{})
}

// FindByState returns the orders currently in the given state
func (r *RestockOrderRepository) FindByState(ctx context.Context, state domain.RestockOrderState) ([]*domain.RestockOrder, error) {
	return r.find(ctx, bson.M{"state": state})
}

func (r *RestockOrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.RestockOrder, error) {
	cursor, err := r.collection.Find(ctx, filter, sortAsc("orderId"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*domain.RestockOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the order. Deleting an absent id is not an error.
func (r *RestockOrderRepository) Delete(ctx context.Context, id int) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"orderId": id})
	return err
}
