package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"efmode-api-io/api/metrics"
)

// MongoStore implements Store on a single mongo database handle. Each
// call is one round trip; the driver's own pooling handles concurrency.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	defer metrics.TrackDBOperation("insert")(time.Now())

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Wrapf(err, "insert into %q failed", collection)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) ListAll(ctx context.Context, collection string) ([]bson.M, error) {
	defer metrics.TrackDBOperation("find")(time.Now())

	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrapf(err, "find on %q failed", collection)
	}

	docs := []bson.M{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decoding documents from %q failed", collection)
	}

	// Internal identifier stays internal; create responses carry the id.
	for _, doc := range docs {
		delete(doc, "_id")
	}

	return docs, nil
}

func (s *MongoStore) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	defer metrics.TrackDBOperation("list_collections")(time.Now())

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "listing collection names failed")
	}

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
