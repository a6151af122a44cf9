package middleware

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mmynk/tal3a/internal/models"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// CallInfo is the per-call record that outer interceptors share with inner
// ones. The auth interceptors fill in Principal once the caller is known.
type CallInfo struct {
	RequestID string
	Principal models.Principal
}

type callInfoKey struct{}

func callInfoFrom(ctx context.Context) *CallInfo {
	info, _ := ctx.Value(callInfoKey{}).(*CallInfo)
	return info
}

// GetRequestID returns the id assigned to the current call, if any.
func GetRequestID(ctx context.Context) string {
	if info := callInfoFrom(ctx); info != nil {
		return info.RequestID
	}
	return ""
}

// RequestIDInterceptor tags every call with the caller's X-Request-Id, or a
// fresh UUID when none (or an oversized one) was sent, and echoes it back.
func RequestIDInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			id := req.Header().Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}
			ctx = context.WithValue(ctx, callInfoKey{}, &CallInfo{RequestID: id})

			resp, err := next(ctx, req)
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(RequestIDHeader, id)
				}
				return resp, err
			}
			resp.Header().Set(RequestIDHeader, id)
			return resp, nil
		}
	}
}
