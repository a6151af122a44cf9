package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/tal3a/internal/middleware"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/tal3a"
	pb "github.com/mmynk/tal3a/pkg/api/tal3av1"
	"github.com/mmynk/tal3a/pkg/api/tal3av1/tal3av1connect"
)

// EventService implements the Connect EventService.
type EventService struct {
	events *tal3a.EventManager
	logger *slog.Logger
}

var _ tal3av1connect.EventServiceHandler = (*EventService)(nil)

// NewEventService creates a new EventService backed by the engine.
func NewEventService(engine *tal3a.Engine, logger *slog.Logger) *EventService {
	return &EventService{events: engine.Events, logger: logger}
}

// CreateEvent schedules a new event organized by the caller.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[pb.CreateEventRequest]) (*connect.Response[pb.CreateEventResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("CreateEvent request received",
		"principal", caller,
		"group_id", req.Msg.GroupID,
		"sport", req.Msg.Sport,
		"max_participants", req.Msg.MaxParticipants,
	)

	event, err := s.events.Create(ctx, caller, fromCreateEventRequest(req.Msg))
	if err != nil {
		return nil, fail(s.logger, "CreateEvent", err, "principal", caller)
	}

	return connect.NewResponse(&pb.CreateEventResponse{Event: toProtoEvent(event)}), nil
}

// UpdateEvent changes the provided fields of an event the caller organizes.
func (s *EventService) UpdateEvent(ctx context.Context, req *connect.Request[pb.UpdateEventRequest]) (*connect.Response[pb.UpdateEventResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("UpdateEvent request received", "principal", caller, "event_id", req.Msg.EventID)

	event, err := s.events.Update(ctx, caller, req.Msg.EventID, fromUpdateEventRequest(req.Msg))
	if err != nil {
		return nil, fail(s.logger, "UpdateEvent", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.UpdateEventResponse{Event: toProtoEvent(event)}), nil
}

// DeleteEvent removes an event that has not started.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[pb.DeleteEventRequest]) (*connect.Response[pb.DeleteEventResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("DeleteEvent request received", "principal", caller, "event_id", req.Msg.EventID)

	if err := s.events.Delete(ctx, caller, req.Msg.EventID); err != nil {
		return nil, fail(s.logger, "DeleteEvent", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.DeleteEventResponse{}), nil
}

// GetEvent retrieves an event by ID.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[pb.GetEventRequest]) (*connect.Response[pb.GetEventResponse], error) {
	event, err := s.events.Get(ctx, req.Msg.EventID)
	if err != nil {
		return nil, fail(s.logger, "GetEvent", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.GetEventResponse{Event: toProtoEvent(event)}), nil
}

// ListEvents returns one page of the events matching the request filters.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[pb.ListEventsRequest]) (*connect.Response[pb.ListEventsResponse], error) {
	page, err := s.events.List(ctx, fromListEventsRequest(req.Msg), int(req.Msg.Page), int(req.Msg.PageSize))
	if err != nil {
		return nil, fail(s.logger, "ListEvents", err)
	}

	s.logger.Debug("ListEvents successful", "count", len(page.Items), "total", page.Total)

	return connect.NewResponse(&pb.ListEventsResponse{
		Events:   toProtoEvents(page.Items),
		Page:     int32(page.Page),
		PageSize: int32(page.PageSize),
		Total:    int32(page.Total),
		HasNext:  page.HasNext,
	}), nil
}

// GetEventStatus returns the lifecycle status of an event.
func (s *EventService) GetEventStatus(ctx context.Context, req *connect.Request[pb.GetEventStatusRequest]) (*connect.Response[pb.GetEventStatusResponse], error) {
	status, err := s.events.Status(ctx, req.Msg.EventID)
	if err != nil {
		return nil, fail(s.logger, "GetEventStatus", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.GetEventStatusResponse{Status: string(status)}), nil
}

// UpdateEventStatus moves an event along the status transition table.
func (s *EventService) UpdateEventStatus(ctx context.Context, req *connect.Request[pb.UpdateEventStatusRequest]) (*connect.Response[pb.UpdateEventStatusResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("UpdateEventStatus request received",
		"principal", caller,
		"event_id", req.Msg.EventID,
		"status", req.Msg.Status,
	)

	event, err := s.events.UpdateStatus(ctx, caller, req.Msg.EventID, models.EventStatus(req.Msg.Status))
	if err != nil {
		return nil, fail(s.logger, "UpdateEventStatus", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.UpdateEventStatusResponse{Event: toProtoEvent(event)}), nil
}

// ListOrganizedEvents lists the events an organizer created, the caller by default.
func (s *EventService) ListOrganizedEvents(ctx context.Context, req *connect.Request[pb.ListOrganizedEventsRequest]) (*connect.Response[pb.ListOrganizedEventsResponse], error) {
	organizer := models.Principal(req.Msg.OrganizerID)
	if organizer == "" {
		organizer = middleware.GetPrincipal(ctx)
	}

	events, err := s.events.ListByOrganizer(ctx, organizer)
	if err != nil {
		return nil, fail(s.logger, "ListOrganizedEvents", err, "organizer", organizer)
	}

	return connect.NewResponse(&pb.ListOrganizedEventsResponse{Events: toProtoEvents(events)}), nil
}
