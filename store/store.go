package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the persistence surface the controllers depend on. Handlers
// receive it at route setup so tests can substitute an in-memory fake.
type Store interface {
	// Insert writes one document into the named collection and returns
	// the store-assigned identifier as a plain string.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)

	// ListAll fetches every document in the named collection with the
	// internal identifier removed. An empty collection yields an empty
	// slice, never an error.
	ListAll(ctx context.Context, collection string) ([]bson.M, error)

	// CollectionNames enumerates up to limit collection names, used by
	// the diagnostics endpoint as a connectivity probe.
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}
