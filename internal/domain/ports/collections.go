// Package ports defines the interfaces between the application layer and
// infrastructure implementations.
package ports

import (
	"context"

	"github.com/devanpat/milvago/client"
	"github.com/devanpat/milvago/schema"
)

// CollectionAdmin is the collection lifecycle surface commands operate on.
// *client.Client satisfies it.
type CollectionAdmin interface {
	// CreateCollection creates a collection and returns a handle bound to it.
	CreateCollection(ctx context.Context, name, description string, sch *schema.CollectionSchema, shards int32, level client.ConsistencyLevel) (*client.Collection, error)

	// DropCollection drops the named collection.
	DropCollection(ctx context.Context, name string) error

	// HasCollection reports whether the named collection exists.
	HasCollection(ctx context.Context, name string) (bool, error)

	// GetCollection returns a handle to the named collection, or nil if it
	// does not exist.
	GetCollection(ctx context.Context, name string) (*client.Collection, error)

	// Close releases the underlying connection.
	Close() error
}
