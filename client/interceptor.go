package client

import (
	"context"
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// requestIDHeader is the metadata key carrying the per-call request ID.
const requestIDHeader = "client-request-id"

// requestIDInterceptor tags every outgoing call with a unique ID so
// server-side audit logs can correlate calls from this client.
func requestIDInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, uuid.NewString())
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// metricsInterceptor counts calls and failures per method.
func metricsInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		metrics.GetOrCreateCounter(fmt.Sprintf(`milvago_client_requests_total{method=%q}`, method)).Inc()
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			metrics.GetOrCreateCounter(fmt.Sprintf(`milvago_client_request_errors_total{method=%q}`, method)).Inc()
		}
		return err
	}
}
