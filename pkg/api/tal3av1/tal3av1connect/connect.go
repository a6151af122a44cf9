// Package tal3av1connect wires the tal3a.v1 services to connect handlers and
// clients. Every procedure is unary and speaks the JSON codec of tal3av1.
package tal3av1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/tal3a/pkg/api/tal3av1"
)

const (
	EventServiceName       = "tal3a.v1.EventService"
	ParticipantServiceName = "tal3a.v1.ParticipantService"
	ReviewServiceName      = "tal3a.v1.ReviewService"
	CommentServiceName     = "tal3a.v1.CommentService"
	UtilityServiceName     = "tal3a.v1.UtilityService"
)

func procedure(service, method string) string {
	return "/" + service + "/" + method
}

func unaryHandler[Req, Res any](
	mux *http.ServeMux,
	service, method string,
	fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) {
	path := procedure(service, method)
	mux.Handle(path, connect.NewUnaryHandler(path, fn, withCodec(opts)...))
}

func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(tal3av1.Codec{})}, opts...)
}

func unaryClient[Req, Res any](httpClient connect.HTTPClient, baseURL, service, method string, opts []connect.ClientOption) *connect.Client[Req, Res] {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(tal3av1.Codec{})}, opts...)
	return connect.NewClient[Req, Res](httpClient, baseURL+procedure(service, method), opts...)
}

func servicePath(service string) string {
	return "/" + service + "/"
}
