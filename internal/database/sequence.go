package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceOrders names the order id sequence in the counters collection.
const SequenceOrders = "orders"

// NextSequence atomically increments and returns the named counter.
// The first call for a name yields 1. Concurrent callers never receive the
// same value because the increment is a single findAndModify.
func NextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := db.Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

// ResetSequence deletes the named counter so the next NextSequence call
// starts over at 1.
func ResetSequence(ctx context.Context, db *mongo.Database, name string) error {
	_, err := db.Collection("counters").DeleteOne(ctx, bson.M{"_id": name})
	return err
}
