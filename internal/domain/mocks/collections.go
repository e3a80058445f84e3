// Package mocks provides hand-written mocks of the domain ports.
package mocks

import (
	"context"

	"github.com/devanpat/milvago/client"
	"github.com/devanpat/milvago/schema"
)

// CollectionAdmin is a mock implementation of ports.CollectionAdmin.
type CollectionAdmin struct {
	// Existing lists collection names the mock treats as present.
	Existing map[string]bool

	// Errors (separate per operation for fine-grained control)
	CreateErr error
	DropErr   error
	HasErr    error

	// Call tracking
	CreateCallCount int
	CreateLastName  string
	DropCallCount   int
	DropLastName    string
	HasCallCount    int
	CloseCallCount  int
}

// CreateCollection records the call and marks the collection as existing.
func (m *CollectionAdmin) CreateCollection(_ context.Context, name, _ string, _ *schema.CollectionSchema, _ int32, _ client.ConsistencyLevel) (*client.Collection, error) {
	m.CreateCallCount++
	m.CreateLastName = name
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if m.Existing == nil {
		m.Existing = make(map[string]bool)
	}
	m.Existing[name] = true
	return &client.Collection{}, nil
}

// DropCollection records the call and removes the collection.
func (m *CollectionAdmin) DropCollection(_ context.Context, name string) error {
	m.DropCallCount++
	m.DropLastName = name
	if m.DropErr != nil {
		return m.DropErr
	}
	delete(m.Existing, name)
	return nil
}

// HasCollection reports existence from the mock's state.
func (m *CollectionAdmin) HasCollection(_ context.Context, name string) (bool, error) {
	m.HasCallCount++
	if m.HasErr != nil {
		return false, m.HasErr
	}
	return m.Existing[name], nil
}

// GetCollection returns a handle when the collection exists.
func (m *CollectionAdmin) GetCollection(ctx context.Context, name string) (*client.Collection, error) {
	exists, err := m.HasCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return &client.Collection{}, nil
}

// Close records the call.
func (m *CollectionAdmin) Close() error {
	m.CloseCallCount++
	return nil
}
