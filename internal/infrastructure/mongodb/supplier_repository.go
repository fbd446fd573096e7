package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SupplierRepository reads the supplier registry maintained by the
// procurement side of the platform. This service only checks existence.
type SupplierRepository struct {
	collection *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	repo := &SupplierRepository{
		collection: db.Collection("suppliers"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *SupplierRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "supplierId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Exists reports whether the supplier is registered
func (r *SupplierRepository) Exists(ctx context.Context, supplierID int) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"supplierId": supplierID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
