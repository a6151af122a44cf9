package tal3av1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	tal3av1 "github.com/mmynk/tal3a/pkg/api/tal3av1"
)

// ParticipantServiceHandler is implemented by the server side of tal3a.v1.ParticipantService.
type ParticipantServiceHandler interface {
	JoinEvent(context.Context, *connect.Request[tal3av1.JoinEventRequest]) (*connect.Response[tal3av1.JoinEventResponse], error)
	LeaveEvent(context.Context, *connect.Request[tal3av1.LeaveEventRequest]) (*connect.Response[tal3av1.LeaveEventResponse], error)
	ListParticipants(context.Context, *connect.Request[tal3av1.ListParticipantsRequest]) (*connect.Response[tal3av1.ListParticipantsResponse], error)
	UpdateParticipantStatus(context.Context, *connect.Request[tal3av1.UpdateParticipantStatusRequest]) (*connect.Response[tal3av1.UpdateParticipantStatusResponse], error)
	ListHistory(context.Context, *connect.Request[tal3av1.ListHistoryRequest]) (*connect.Response[tal3av1.ListHistoryResponse], error)
}

// NewParticipantServiceHandler builds an HTTP handler serving every ParticipantService procedure.
// Mount it at the returned path.
func NewParticipantServiceHandler(svc ParticipantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	unaryHandler(mux, ParticipantServiceName, "JoinEvent", svc.JoinEvent, opts)
	unaryHandler(mux, ParticipantServiceName, "LeaveEvent", svc.LeaveEvent, opts)
	unaryHandler(mux, ParticipantServiceName, "ListParticipants", svc.ListParticipants, opts)
	unaryHandler(mux, ParticipantServiceName, "UpdateParticipantStatus", svc.UpdateParticipantStatus, opts)
	unaryHandler(mux, ParticipantServiceName, "ListHistory", svc.ListHistory, opts)
	return servicePath(ParticipantServiceName), mux
}

// ParticipantServiceClient is a client for tal3a.v1.ParticipantService.
type ParticipantServiceClient interface {
	JoinEvent(context.Context, *connect.Request[tal3av1.JoinEventRequest]) (*connect.Response[tal3av1.JoinEventResponse], error)
	LeaveEvent(context.Context, *connect.Request[tal3av1.LeaveEventRequest]) (*connect.Response[tal3av1.LeaveEventResponse], error)
	ListParticipants(context.Context, *connect.Request[tal3av1.ListParticipantsRequest]) (*connect.Response[tal3av1.ListParticipantsResponse], error)
	UpdateParticipantStatus(context.Context, *connect.Request[tal3av1.UpdateParticipantStatusRequest]) (*connect.Response[tal3av1.UpdateParticipantStatusResponse], error)
	ListHistory(context.Context, *connect.Request[tal3av1.ListHistoryRequest]) (*connect.Response[tal3av1.ListHistoryResponse], error)
}

// NewParticipantServiceClient constructs a client for the service at baseURL.
func NewParticipantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ParticipantServiceClient {
	return &participantServiceClient{
		joinEvent:               unaryClient[tal3av1.JoinEventRequest, tal3av1.JoinEventResponse](httpClient, baseURL, ParticipantServiceName, "JoinEvent", opts),
		leaveEvent:              unaryClient[tal3av1.LeaveEventRequest, tal3av1.LeaveEventResponse](httpClient, baseURL, ParticipantServiceName, "LeaveEvent", opts),
		listParticipants:        unaryClient[tal3av1.ListParticipantsRequest, tal3av1.ListParticipantsResponse](httpClient, baseURL, ParticipantServiceName, "ListParticipants", opts),
		updateParticipantStatus: unaryClient[tal3av1.UpdateParticipantStatusRequest, tal3av1.UpdateParticipantStatusResponse](httpClient, baseURL, ParticipantServiceName, "UpdateParticipantStatus", opts),
		listHistory:             unaryClient[tal3av1.ListHistoryRequest, tal3av1.ListHistoryResponse](httpClient, baseURL, ParticipantServiceName, "ListHistory", opts),
	}
}

type participantServiceClient struct {
	joinEvent               *connect.Client[tal3av1.JoinEventRequest, tal3av1.JoinEventResponse]
	leaveEvent              *connect.Client[tal3av1.LeaveEventRequest, tal3av1.LeaveEventResponse]
	listParticipants        *connect.Client[tal3av1.ListParticipantsRequest, tal3av1.ListParticipantsResponse]
	updateParticipantStatus *connect.Client[tal3av1.UpdateParticipantStatusRequest, tal3av1.UpdateParticipantStatusResponse]
	listHistory             *connect.Client[tal3av1.ListHistoryRequest, tal3av1.ListHistoryResponse]
}

func (c *participantServiceClient) JoinEvent(ctx context.Context, req *connect.Request[tal3av1.JoinEventRequest]) (*connect.Response[tal3av1.JoinEventResponse], error) {
	return c.joinEvent.CallUnary(ctx, req)
}

func (c *participantServiceClient) LeaveEvent(ctx context.Context, req *connect.Request[tal3av1.LeaveEventRequest]) (*connect.Response[tal3av1.LeaveEventResponse], error) {
	return c.leaveEvent.CallUnary(ctx, req)
}

func (c *participantServiceClient) ListParticipants(ctx context.Context, req *connect.Request[tal3av1.ListParticipantsRequest]) (*connect.Response[tal3av1.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *participantServiceClient) UpdateParticipantStatus(ctx context.Context, req *connect.Request[tal3av1.UpdateParticipantStatusRequest]) (*connect.Response[tal3av1.UpdateParticipantStatusResponse], error) {
	return c.updateParticipantStatus.CallUnary(ctx, req)
}

func (c *participantServiceClient) ListHistory(ctx context.Context, req *connect.Request[tal3av1.ListHistoryRequest]) (*connect.Response[tal3av1.ListHistoryResponse], error) {
	return c.listHistory.CallUnary(ctx, req)
}
