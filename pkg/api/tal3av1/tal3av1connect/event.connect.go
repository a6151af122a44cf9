package tal3av1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	tal3av1 "github.com/mmynk/tal3a/pkg/api/tal3av1"
)

// EventServiceHandler is implemented by the server side of tal3a.v1.EventService.
type EventServiceHandler interface {
	CreateEvent(context.Context, *connect.Request[tal3av1.CreateEventRequest]) (*connect.Response[tal3av1.CreateEventResponse], error)
	UpdateEvent(context.Context, *connect.Request[tal3av1.UpdateEventRequest]) (*connect.Response[tal3av1.UpdateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[tal3av1.DeleteEventRequest]) (*connect.Response[tal3av1.DeleteEventResponse], error)
	GetEvent(context.Context, *connect.Request[tal3av1.GetEventRequest]) (*connect.Response[tal3av1.GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[tal3av1.ListEventsRequest]) (*connect.Response[tal3av1.ListEventsResponse], error)
	GetEventStatus(context.Context, *connect.Request[tal3av1.GetEventStatusRequest]) (*connect.Response[tal3av1.GetEventStatusResponse], error)
	UpdateEventStatus(context.Context, *connect.Request[tal3av1.UpdateEventStatusRequest]) (*connect.Response[tal3av1.UpdateEventStatusResponse], error)
	ListOrganizedEvents(context.Context, *connect.Request[tal3av1.ListOrganizedEventsRequest]) (*connect.Response[tal3av1.ListOrganizedEventsResponse], error)
}

// NewEventServiceHandler builds an HTTP handler serving every EventService procedure.
// Mount it at the returned path.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	unaryHandler(mux, EventServiceName, "CreateEvent", svc.CreateEvent, opts)
	unaryHandler(mux, EventServiceName, "UpdateEvent", svc.UpdateEvent, opts)
	unaryHandler(mux, EventServiceName, "DeleteEvent", svc.DeleteEvent, opts)
	unaryHandler(mux, EventServiceName, "GetEvent", svc.GetEvent, opts)
	unaryHandler(mux, EventServiceName, "ListEvents", svc.ListEvents, opts)
	unaryHandler(mux, EventServiceName, "GetEventStatus", svc.GetEventStatus, opts)
	unaryHandler(mux, EventServiceName, "UpdateEventStatus", svc.UpdateEventStatus, opts)
	unaryHandler(mux, EventServiceName, "ListOrganizedEvents", svc.ListOrganizedEvents, opts)
	return servicePath(EventServiceName), mux
}

// EventServiceClient is a client for tal3a.v1.EventService.
type EventServiceClient interface {
	CreateEvent(context.Context, *connect.Request[tal3av1.CreateEventRequest]) (*connect.Response[tal3av1.CreateEventResponse], error)
	UpdateEvent(context.Context, *connect.Request[tal3av1.UpdateEventRequest]) (*connect.Response[tal3av1.UpdateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[tal3av1.DeleteEventRequest]) (*connect.Response[tal3av1.DeleteEventResponse], error)
	GetEvent(context.Context, *connect.Request[tal3av1.GetEventRequest]) (*connect.Response[tal3av1.GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[tal3av1.ListEventsRequest]) (*connect.Response[tal3av1.ListEventsResponse], error)
	GetEventStatus(context.Context, *connect.Request[tal3av1.GetEventStatusRequest]) (*connect.Response[tal3av1.GetEventStatusResponse], error)
	UpdateEventStatus(context.Context, *connect.Request[tal3av1.UpdateEventStatusRequest]) (*connect.Response[tal3av1.UpdateEventStatusResponse], error)
	ListOrganizedEvents(context.Context, *connect.Request[tal3av1.ListOrganizedEventsRequest]) (*connect.Response[tal3av1.ListOrganizedEventsResponse], error)
}

// NewEventServiceClient constructs a client for the service at baseURL.
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EventServiceClient {
	return &eventServiceClient{
		createEvent:         unaryClient[tal3av1.CreateEventRequest, tal3av1.CreateEventResponse](httpClient, baseURL, EventServiceName, "CreateEvent", opts),
		updateEvent:         unaryClient[tal3av1.UpdateEventRequest, tal3av1.UpdateEventResponse](httpClient, baseURL, EventServiceName, "UpdateEvent", opts),
		deleteEvent:         unaryClient[tal3av1.DeleteEventRequest, tal3av1.DeleteEventResponse](httpClient, baseURL, EventServiceName, "DeleteEvent", opts),
		getEvent:            unaryClient[tal3av1.GetEventRequest, tal3av1.GetEventResponse](httpClient, baseURL, EventServiceName, "GetEvent", opts),
		listEvents:          unaryClient[tal3av1.ListEventsRequest, tal3av1.ListEventsResponse](httpClient, baseURL, EventServiceName, "ListEvents", opts),
		getEventStatus:      unaryClient[tal3av1.GetEventStatusRequest, tal3av1.GetEventStatusResponse](httpClient, baseURL, EventServiceName, "GetEventStatus", opts),
		updateEventStatus:   unaryClient[tal3av1.UpdateEventStatusRequest, tal3av1.UpdateEventStatusResponse](httpClient, baseURL, EventServiceName, "UpdateEventStatus", opts),
		listOrganizedEvents: unaryClient[tal3av1.ListOrganizedEventsRequest, tal3av1.ListOrganizedEventsResponse](httpClient, baseURL, EventServiceName, "ListOrganizedEvents", opts),
	}
}

type eventServiceClient struct {
	createEvent         *connect.Client[tal3av1.CreateEventRequest, tal3av1.CreateEventResponse]
	updateEvent         *connect.Client[tal3av1.UpdateEventRequest, tal3av1.UpdateEventResponse]
	deleteEvent         *connect.Client[tal3av1.DeleteEventRequest, tal3av1.DeleteEventResponse]
	getEvent            *connect.Client[tal3av1.GetEventRequest, tal3av1.GetEventResponse]
	listEvents          *connect.Client[tal3av1.ListEventsRequest, tal3av1.ListEventsResponse]
	getEventStatus      *connect.Client[tal3av1.GetEventStatusRequest, tal3av1.GetEventStatusResponse]
	updateEventStatus   *connect.Client[tal3av1.UpdateEventStatusRequest, tal3av1.UpdateEventStatusResponse]
	listOrganizedEvents *connect.Client[tal3av1.ListOrganizedEventsRequest, tal3av1.ListOrganizedEventsResponse]
}

func (c *eventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[tal3av1.CreateEventRequest]) (*connect.Response[tal3av1.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) UpdateEvent(ctx context.Context, req *connect.Request[tal3av1.UpdateEventRequest]) (*connect.Response[tal3av1.UpdateEventResponse], error) {
	return c.updateEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[tal3av1.DeleteEventRequest]) (*connect.Response[tal3av1.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) GetEvent(ctx context.Context, req *connect.Request[tal3av1.GetEventRequest]) (*connect.Response[tal3av1.GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) ListEvents(ctx context.Context, req *connect.Request[tal3av1.ListEventsRequest]) (*connect.Response[tal3av1.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *eventServiceClient) GetEventStatus(ctx context.Context, req *connect.Request[tal3av1.GetEventStatusRequest]) (*connect.Response[tal3av1.GetEventStatusResponse], error) {
	return c.getEventStatus.CallUnary(ctx, req)
}

func (c *eventServiceClient) UpdateEventStatus(ctx context.Context, req *connect.Request[tal3av1.UpdateEventStatusRequest]) (*connect.Response[tal3av1.UpdateEventStatusResponse], error) {
	return c.updateEventStatus.CallUnary(ctx, req)
}

func (c *eventServiceClient) ListOrganizedEvents(ctx context.Context, req *connect.Request[tal3av1.ListOrganizedEventsRequest]) (*connect.Response[tal3av1.ListOrganizedEventsResponse], error) {
	return c.listOrganizedEvents.CallUnary(ctx, req)
}
