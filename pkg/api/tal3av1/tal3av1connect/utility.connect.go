package tal3av1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	tal3av1 "github.com/mmynk/tal3a/pkg/api/tal3av1"
)

// UtilityServiceHandler is implemented by the server side of tal3a.v1.UtilityService.
type UtilityServiceHandler interface {
	Health(context.Context, *connect.Request[tal3av1.HealthRequest]) (*connect.Response[tal3av1.HealthResponse], error)
	Now(context.Context, *connect.Request[tal3av1.NowRequest]) (*connect.Response[tal3av1.NowResponse], error)
	WhoAmI(context.Context, *connect.Request[tal3av1.WhoAmIRequest]) (*connect.Response[tal3av1.WhoAmIResponse], error)
	CompactIndex(context.Context, *connect.Request[tal3av1.CompactIndexRequest]) (*connect.Response[tal3av1.CompactIndexResponse], error)
}

// NewUtilityServiceHandler builds an HTTP handler serving every UtilityService procedure.
// Mount it at the returned path.
func NewUtilityServiceHandler(svc UtilityServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	unaryHandler(mux, UtilityServiceName, "Health", svc.Health, opts)
	unaryHandler(mux, UtilityServiceName, "Now", svc.Now, opts)
	unaryHandler(mux, UtilityServiceName, "WhoAmI", svc.WhoAmI, opts)
	unaryHandler(mux, UtilityServiceName, "CompactIndex", svc.CompactIndex, opts)
	return servicePath(UtilityServiceName), mux
}

// UtilityServiceClient is a client for tal3a.v1.UtilityService.
type UtilityServiceClient interface {
	Health(context.Context, *connect.Request[tal3av1.HealthRequest]) (*connect.Response[tal3av1.HealthResponse], error)
	Now(context.Context, *connect.Request[tal3av1.NowRequest]) (*connect.Response[tal3av1.NowResponse], error)
	WhoAmI(context.Context, *connect.Request[tal3av1.WhoAmIRequest]) (*connect.Response[tal3av1.WhoAmIResponse], error)
	CompactIndex(context.Context, *connect.Request[tal3av1.CompactIndexRequest]) (*connect.Response[tal3av1.CompactIndexResponse], error)
}

// NewUtilityServiceClient constructs a client for the service at baseURL.
func NewUtilityServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UtilityServiceClient {
	return &utilityServiceClient{
		health:       unaryClient[tal3av1.HealthRequest, tal3av1.HealthResponse](httpClient, baseURL, UtilityServiceName, "Health", opts),
		now:          unaryClient[tal3av1.NowRequest, tal3av1.NowResponse](httpClient, baseURL, UtilityServiceName, "Now", opts),
		whoAmI:       unaryClient[tal3av1.WhoAmIRequest, tal3av1.WhoAmIResponse](httpClient, baseURL, UtilityServiceName, "WhoAmI", opts),
		compactIndex: unaryClient[tal3av1.CompactIndexRequest, tal3av1.CompactIndexResponse](httpClient, baseURL, UtilityServiceName, "CompactIndex", opts),
	}
}

type utilityServiceClient struct {
	health       *connect.Client[tal3av1.HealthRequest, tal3av1.HealthResponse]
	now          *connect.Client[tal3av1.NowRequest, tal3av1.NowResponse]
	whoAmI       *connect.Client[tal3av1.WhoAmIRequest, tal3av1.WhoAmIResponse]
	compactIndex *connect.Client[tal3av1.CompactIndexRequest, tal3av1.CompactIndexResponse]
}

func (c *utilityServiceClient) Health(ctx context.Context, req *connect.Request[tal3av1.HealthRequest]) (*connect.Response[tal3av1.HealthResponse], error) {
	return c.health.CallUnary(ctx, req)
}

func (c *utilityServiceClient) Now(ctx context.Context, req *connect.Request[tal3av1.NowRequest]) (*connect.Response[tal3av1.NowResponse], error) {
	return c.now.CallUnary(ctx, req)
}

func (c *utilityServiceClient) WhoAmI(ctx context.Context, req *connect.Request[tal3av1.WhoAmIRequest]) (*connect.Response[tal3av1.WhoAmIResponse], error) {
	return c.whoAmI.CallUnary(ctx, req)
}

func (c *utilityServiceClient) CompactIndex(ctx context.Context, req *connect.Request[tal3av1.CompactIndexRequest]) (*connect.Response[tal3av1.CompactIndexResponse], error) {
	return c.compactIndex.CallUnary(ctx, req)
}
