package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// upsert replaces the document matching filter, inserting it when absent
func upsert(ctx context.Context, collection *mongo.Collection, filter bson.M, doc interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := collection.UpdateOne(ctx, filter, bson.M{"$set": doc}, opts)
	return err
}

// sortAsc builds find options sorted ascending on the given field
func sortAsc(field string) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: 1}})
}
