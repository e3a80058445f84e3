package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestConnectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := Connect(ctx, "localhost:19530")
	assert.Nil(t, c)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "localhost:19530", connErr.Target)
}

func TestConnectUnreachableEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping socket test in short mode")
	}

	// Grab a free port, then close the listener so nothing accepts on it.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	target := lis.Addr().String()
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	c, err := Connect(ctx, target)
	assert.Nil(t, c)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Less(t, time.Since(start), 5*time.Second, "connect should fail fast, not wait out the deadline")
}

func TestConnectReachableEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping socket test in short mode")
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Connect(ctx, lis.Addr().String())
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, c.Close())
}
