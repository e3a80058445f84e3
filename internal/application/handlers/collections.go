// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/devanpat/milvago/client"
	"github.com/devanpat/milvago/internal/domain/ports"
	"github.com/devanpat/milvago/schema"
)

// CollectionHandler handles collection lifecycle commands.
type CollectionHandler struct {
	admin ports.CollectionAdmin
}

// NewCollectionHandler creates a new collection handler.
func NewCollectionHandler(admin ports.CollectionAdmin) *CollectionHandler {
	return &CollectionHandler{
		admin: admin,
	}
}

// CreateParams carries the inputs for collection creation.
type CreateParams struct {
	Name        string
	Description string
	Schema      *schema.CollectionSchema
	Shards      int32
	Consistency client.ConsistencyLevel
}

// CreateResult contains the result of creating a collection.
type CreateResult struct {
	Name string
}

// Create creates a collection from the given params.
func (h *CollectionHandler) Create(ctx context.Context, params CreateParams) (*CreateResult, error) {
	// The handle is not retained; commands only report the outcome.
	if _, err := h.admin.CreateCollection(ctx, params.Name, params.Description, params.Schema, params.Shards, params.Consistency); err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return &CreateResult{Name: params.Name}, nil
}

// Drop drops the named collection.
func (h *CollectionHandler) Drop(ctx context.Context, name string) error {
	if err := h.admin.DropCollection(ctx, name); err != nil {
		return fmt.Errorf("dropping collection: %w", err)
	}
	return nil
}

// Exists reports whether the named collection exists.
func (h *CollectionHandler) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := h.admin.HasCollection(ctx, name)
	if err != nil {
		return false, fmt.Errorf("checking collection: %w", err)
	}
	return exists, nil
}

// GetResult contains the result of a collection lookup.
type GetResult struct {
	Name  string
	Found bool
}

// Get looks up the named collection.
func (h *CollectionHandler) Get(ctx context.Context, name string) (*GetResult, error) {
	col, err := h.admin.GetCollection(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}

	return &GetResult{
		Name:  name,
		Found: col != nil,
	}, nil
}
