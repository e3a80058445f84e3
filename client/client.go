// Package client provides a Milvus client scoped to collection lifecycle
// operations: create, drop, existence check and lookup.
package client

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/milvus-io/milvus-proto/go-api/v2/milvuspb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/devanpat/milvago/schema"
)

// ConsistencyLevel controls read freshness guarantees for operations against
// a collection.
type ConsistencyLevel = commonpb.ConsistencyLevel

// Consistency levels accepted by CreateCollection.
const (
	ConsistencyStrong     = commonpb.ConsistencyLevel_Strong
	ConsistencySession    = commonpb.ConsistencyLevel_Session
	ConsistencyBounded    = commonpb.ConsistencyLevel_Bounded
	ConsistencyEventually = commonpb.ConsistencyLevel_Eventually
	ConsistencyCustomized = commonpb.ConsistencyLevel_Customized
)

// collectionService is the subset of the Milvus RPC surface this package
// uses. milvuspb.MilvusServiceClient satisfies it.
type collectionService interface {
	CreateCollection(ctx context.Context, in *milvuspb.CreateCollectionRequest, opts ...grpc.CallOption) (*commonpb.Status, error)
	DropCollection(ctx context.Context, in *milvuspb.DropCollectionRequest, opts ...grpc.CallOption) (*commonpb.Status, error)
	HasCollection(ctx context.Context, in *milvuspb.HasCollectionRequest, opts ...grpc.CallOption) (*milvuspb.BoolResponse, error)
}

// Client owns a single connection to the service. The connection multiplexes
// concurrent calls, so a Client is safe for concurrent use; it holds no other
// state. Failures are returned to the caller immediately, never retried, and
// a failed call leaves the client usable.
type Client struct {
	conn    *grpc.ClientConn
	service collectionService
}

// Connect establishes a connection to the service at target and waits for it
// to become ready. It returns a *ConnectionError if the target is malformed
// or the endpoint cannot be reached before ctx expires. The connection is
// plaintext unless the caller overrides the credentials through opts.
func Connect(ctx context.Context, target string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(requestIDInterceptor(), metricsInterceptor()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, &ConnectionError{Target: target, Err: err}
	}

	if err := waitReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, &ConnectionError{Target: target, Err: err}
	}

	return &Client{
		conn:    conn,
		service: milvuspb.NewMilvusServiceClient(conn),
	}, nil
}

// waitReady drives the lazy connection until it is ready, failing fast on
// transient failure instead of waiting out the ctx.
func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		switch state := conn.GetState(); state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			return fmt.Errorf("connection entered state %s", state)
		default:
			if !conn.WaitForStateChange(ctx, state) {
				return ctx.Err()
			}
		}
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// newBase builds the common request header tagging the message type. The
// server uses the tag for routing and auditing.
func newBase(msgType commonpb.MsgType) *commonpb.MsgBase {
	return &commonpb.MsgBase{MsgType: msgType}
}

// CreateCollection creates a collection and returns a handle bound to it.
// The schema is validated and serialized locally before any request is sent;
// a bad schema yields a *SchemaError and no network exchange. Name
// uniqueness is enforced only by the server, so creating the same name twice
// fails remotely on the second call.
func (c *Client) CreateCollection(ctx context.Context, name, description string, sch *schema.CollectionSchema, shards int32, level ConsistencyLevel) (*Collection, error) {
	if sch == nil {
		return nil, &SchemaError{Err: fmt.Errorf("schema is nil")}
	}
	data, err := sch.Marshal(name, description)
	if err != nil {
		return nil, &SchemaError{Err: err}
	}

	status, err := c.service.CreateCollection(ctx, &milvuspb.CreateCollectionRequest{
		Base:             newBase(commonpb.MsgType_CreateCollection),
		DbName:           "",
		CollectionName:   name,
		Schema:           data,
		ShardsNum:        shards,
		ConsistencyLevel: level,
	})
	if err != nil {
		return nil, &CommunicationError{Op: "CreateCollection", Err: err}
	}
	if err := checkStatus(status); err != nil {
		return nil, err
	}

	return &Collection{name: name, service: c.service}, nil
}

// DropCollection drops the named collection. Dropping a collection that does
// not exist is whatever the server says it is; the failure is surfaced, not
// suppressed.
func (c *Client) DropCollection(ctx context.Context, name string) error {
	status, err := c.service.DropCollection(ctx, &milvuspb.DropCollectionRequest{
		Base:           newBase(commonpb.MsgType_DropCollection),
		DbName:         "",
		CollectionName: name,
	})
	if err != nil {
		return &CommunicationError{Op: "DropCollection", Err: err}
	}
	return checkStatus(status)
}

// HasCollection reports whether the named collection exists.
func (c *Client) HasCollection(ctx context.Context, name string) (bool, error) {
	resp, err := c.service.HasCollection(ctx, &milvuspb.HasCollectionRequest{
		Base:           newBase(commonpb.MsgType_HasCollection),
		DbName:         "",
		CollectionName: name,
		TimeStamp:      0,
	})
	if err != nil {
		return false, &CommunicationError{Op: "HasCollection", Err: err}
	}
	if err := checkStatus(resp.GetStatus()); err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}

// GetCollection returns a handle to the named collection, or nil if it does
// not exist. The existence check and any later use of the handle are separate
// exchanges, so the handle is a name-bound reference, not a guarantee the
// collection still exists.
func (c *Client) GetCollection(ctx context.Context, name string) (*Collection, error) {
	exists, err := c.HasCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return &Collection{name: name, service: c.service}, nil
}
