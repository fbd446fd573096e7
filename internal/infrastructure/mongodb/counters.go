package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// counterDocument holds a named monotonic sequence
type counterDocument struct {
	Name  string `bson:"_id"`
	Value int    `bson:"value"`
}

// nextSequence atomically increments and returns the named counter.
// The counter document is created on first use.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	err := counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}
