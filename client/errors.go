package client

import (
	"errors"
	"fmt"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
)

// ErrNoStatus reports a response that arrived without its status payload.
// Every well-formed response carries one, so this is a protocol violation,
// not a business failure.
var ErrNoStatus = errors.New("response carries no status")

// ConnectionError reports that the transport connection could not be
// established.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// CommunicationError reports that an in-flight call failed at the transport
// level before a response was interpreted.
type CommunicationError struct {
	Op  string
	Err error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("calling %s: %v", e.Op, e.Err)
}

func (e *CommunicationError) Unwrap() error { return e.Err }

// RemoteError reports a non-success status returned by the server. Code and
// Reason are carried verbatim.
type RemoteError struct {
	Code   commonpb.ErrorCode
	Reason string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server error %s: %s", e.Code, e.Reason)
}

// UnknownStatusError reports a status code outside the known enumeration.
type UnknownStatusError struct {
	Code int32
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status code %d", e.Code)
}

// SchemaError reports a schema that failed local validation or serialization.
// No request is sent when this occurs; it indicates a defect in the
// caller-supplied schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("encoding schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// checkStatus maps a response status to an error. Only the Success code
// passes; an absent status, an unrecognized code, and every other known code
// are all failures. All operations share this interpretation.
func checkStatus(status *commonpb.Status) error {
	if status == nil {
		return ErrNoStatus
	}

	code := status.GetErrorCode()
	if _, known := commonpb.ErrorCode_name[int32(code)]; !known {
		return &UnknownStatusError{Code: int32(code)}
	}
	if code != commonpb.ErrorCode_Success {
		return &RemoteError{Code: code, Reason: status.GetReason()}
	}
	return nil
}
