package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/services/restock-service/internal/domain"
)

type SKUItemRepository struct {
	collection *mongo.Collection
}

func NewSKUItemRepository(db *mongo.Database) *SKUItemRepository {
	repo := &SKUItemRepository{
		collection: db.Collection("sku_items"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *SKUItemRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "rfid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "skuId", Value: 1}, {Key: "available", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Save upserts an item keyed by its RFID
func (r *SKUItemRepository) Save(ctx context.Context, item *domain.SKUItem) error {
	item.UpdatedAt = time.Now().UTC()
	return upsert(ctx, r.collection, bson.M{"rfid": item.RFID}, item)
}

// FindByRFID returns the item with the given RFID, or nil when absent
func (r *SKUItemRepository) FindByRFID(ctx context.Context, rfid string) (*domain.SKUItem, error) {
	var item domain.SKUItem
	err := r.collection.FindOne(ctx, bson.M{"rfid": rfid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll returns all items in RFID order
func (r *SKUItemRepository) FindAll(ctx context.Context) ([]*domain.SKUItem, error) {
	return r.find(ctx, bson.M{})
}

// FindAvailableBySKU returns the available instances of a SKU
func (r *SKUItemRepository) FindAvailableBySKU(ctx context.Context, skuID int) ([]*domain.SKUItem, error) {
	return r.find(ctx, bson.M{"skuId": skuID, "available": 1})
}

// FindByRFIDs returns the items matching any of the given RFIDs
func (r *SKUItemRepository) FindByRFIDs(ctx context.Context, rfids []string) ([]*domain.SKUItem, error) {
	if len(rfids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"rfid": bson.M{"$in": rfids}})
}

func (r *SKUItemRepository) find(ctx context.Context, filter bson.M) ([]*domain.SKUItem, error) {
	cursor, err := r.collection.Find(ctx, filter, sortAsc("rfid"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.SKUItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Replace persists an item whose RFID may have changed, removing the
// document stored under the old RFID first
func (r *SKUItemRepository) Replace(ctx context.Context, oldRFID string, item *domain.SKUItem) error {
	if oldRFID != item.RFID {
		if _, err := r.collection.DeleteOne(ctx, bson.M{"rfid": oldRFID}); err != nil {
			return err
		}
	}
	return r.Save(ctx, item)
}

// Delete removes the item. Deleting an absent RFID is not an error.
func (r *SKUItemRepository) Delete(ctx context.Context, rfid string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"rfid": rfid})
	return err
}
