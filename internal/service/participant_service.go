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

// ParticipantService implements the Connect ParticipantService.
type ParticipantService struct {
	participants *tal3a.ParticipantManager
	logger       *slog.Logger
}

var _ tal3av1connect.ParticipantServiceHandler = (*ParticipantService)(nil)

// NewParticipantService creates a new ParticipantService backed by the engine.
func NewParticipantService(engine *tal3a.Engine, logger *slog.Logger) *ParticipantService {
	return &ParticipantService{participants: engine.Participants, logger: logger}
}

// JoinEvent enrolls the caller in an event.
func (s *ParticipantService) JoinEvent(ctx context.Context, req *connect.Request[pb.JoinEventRequest]) (*connect.Response[pb.JoinEventResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("JoinEvent request received", "principal", caller, "event_id", req.Msg.EventID)

	membership, err := s.participants.Join(ctx, caller, req.Msg.EventID, req.Msg.Notes)
	if err != nil {
		return nil, fail(s.logger, "JoinEvent", err, "event_id", req.Msg.EventID, "principal", caller)
	}

	return connect.NewResponse(&pb.JoinEventResponse{Participant: toProtoParticipant(membership)}), nil
}

// LeaveEvent withdraws the caller from an event.
func (s *ParticipantService) LeaveEvent(ctx context.Context, req *connect.Request[pb.LeaveEventRequest]) (*connect.Response[pb.LeaveEventResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("LeaveEvent request received", "principal", caller, "event_id", req.Msg.EventID)

	if err := s.participants.Leave(ctx, caller, req.Msg.EventID); err != nil {
		return nil, fail(s.logger, "LeaveEvent", err, "event_id", req.Msg.EventID, "principal", caller)
	}

	return connect.NewResponse(&pb.LeaveEventResponse{}), nil
}

// ListParticipants returns an event's roster in join order.
func (s *ParticipantService) ListParticipants(ctx context.Context, req *connect.Request[pb.ListParticipantsRequest]) (*connect.Response[pb.ListParticipantsResponse], error) {
	roster, err := s.participants.List(ctx, req.Msg.EventID)
	if err != nil {
		return nil, fail(s.logger, "ListParticipants", err, "event_id", req.Msg.EventID)
	}

	participants := make([]*pb.Participant, len(roster.Members))
	for i := range roster.Members {
		participants[i] = toProtoParticipant(&roster.Members[i])
	}

	return connect.NewResponse(&pb.ListParticipantsResponse{
		Participants:        participants,
		CurrentParticipants: uint32(roster.CurrentParticipants),
		MaxParticipants:     uint32(roster.MaxParticipants),
	}), nil
}

// UpdateParticipantStatus records a participant's attendance intent.
func (s *ParticipantService) UpdateParticipantStatus(ctx context.Context, req *connect.Request[pb.UpdateParticipantStatusRequest]) (*connect.Response[pb.UpdateParticipantStatusResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("UpdateParticipantStatus request received",
		"principal", caller,
		"event_id", req.Msg.EventID,
		"participant", req.Msg.ParticipantID,
		"status", req.Msg.Status,
	)

	membership, err := s.participants.UpdateStatus(ctx, caller, req.Msg.EventID,
		models.Principal(req.Msg.ParticipantID), models.ParticipantStatus(req.Msg.Status))
	if err != nil {
		return nil, fail(s.logger, "UpdateParticipantStatus", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.UpdateParticipantStatusResponse{Participant: toProtoParticipant(membership)}), nil
}

// ListHistory returns the events a user takes part in, the caller by default.
func (s *ParticipantService) ListHistory(ctx context.Context, req *connect.Request[pb.ListHistoryRequest]) (*connect.Response[pb.ListHistoryResponse], error) {
	user := models.Principal(req.Msg.UserID)
	if user == "" {
		user = middleware.GetPrincipal(ctx)
	}

	events, err := s.participants.History(ctx, user)
	if err != nil {
		return nil, fail(s.logger, "ListHistory", err, "user", user)
	}

	return connect.NewResponse(&pb.ListHistoryResponse{Events: toProtoEvents(events)}), nil
}
