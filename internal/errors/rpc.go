package errors

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes.
const (
	RPCCodeUserRejected      = 4001
	RPCCodeUnauthorized      = 4100
	RPCCodeUnsupported       = 4200
	RPCCodeDisconnected      = 4900
	RPCCodeChainDisconnected = 4901
	RPCCodeMethodNotFound    = -32601
)

// FromRPCError converts an error returned by a JSON-RPC provider into an
// Error. Provider error codes are preserved under the "rpc_code" meta key.
func FromRPCError(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return Wrap(err, message)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, message)
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, message)
	}

	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return WrapWithCode(err, CodeUnavailable, message)
	}

	wrapped := WrapWithCode(err, rpcCodeToCode(rpcErr.ErrorCode()), message)
	return wrapped.WithMeta("rpc_code", rpcErr.ErrorCode())
}

func rpcCodeToCode(code int) Code {
	switch code {
	case RPCCodeUserRejected:
		return CodePermissionDenied
	case RPCCodeUnauthorized:
		return CodeUnauthenticated
	case RPCCodeUnsupported, RPCCodeMethodNotFound:
		return CodeUnimplemented
	case RPCCodeDisconnected, RPCCodeChainDisconnected:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
