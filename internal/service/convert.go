package service

import (
	"time"

	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/tal3a"
	pb "github.com/mmynk/tal3a/pkg/api/tal3av1"
)

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}

func toProtoEvent(e *models.Event) *pb.Event {
	return &pb.Event{
		ID:                  e.ID,
		GroupID:             e.GroupID,
		CreatorID:           string(e.CreatorID),
		Title:               e.Title,
		Description:         e.Description,
		ScheduledTime:       toNanos(e.ScheduledTime),
		Place:               e.Place,
		MaxParticipants:     uint32(e.MaxParticipants),
		CurrentParticipants: uint32(e.CurrentParticipants),
		CostPerPerson:       e.CostPerPerson,
		Sport:               string(e.Sport),
		Status:              string(e.Status),
		Image:               e.Image,
		CityID:              uint32(e.CityID),
		GovernorateID:       uint32(e.GovernorateID),
		CreatedAt:           toNanos(e.CreatedAt),
		UpdatedAt:           toNanos(e.UpdatedAt),
	}
}

func toProtoEvents(events []models.Event) []*pb.Event {
	out := make([]*pb.Event, len(events))
	for i := range events {
		out[i] = toProtoEvent(&events[i])
	}
	return out
}

func fromCreateEventRequest(req *pb.CreateEventRequest) tal3a.CreateEventInput {
	return tal3a.CreateEventInput{
		GroupID:         req.GroupID,
		Title:           req.Title,
		Description:     req.Description,
		ScheduledTime:   fromNanos(req.ScheduledTime),
		Place:           req.Place,
		MaxParticipants: int(req.MaxParticipants),
		CostPerPerson:   req.CostPerPerson,
		Sport:           models.Sport(req.Sport),
		Image:           req.Image,
	}
}

func fromUpdateEventRequest(req *pb.UpdateEventRequest) tal3a.EventUpdate {
	changes := tal3a.EventUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Place:         req.Place,
		CostPerPerson: req.CostPerPerson,
		Image:         req.Image,
		ClearCost:     req.ClearCost,
		ClearImage:    req.ClearImage,
	}
	if req.ScheduledTime != nil {
		t := fromNanos(*req.ScheduledTime)
		changes.ScheduledTime = &t
	}
	if req.MaxParticipants != nil {
		n := int(*req.MaxParticipants)
		changes.MaxParticipants = &n
	}
	if req.Sport != nil {
		s := models.Sport(*req.Sport)
		changes.Sport = &s
	}
	return changes
}

func fromListEventsRequest(req *pb.ListEventsRequest) tal3a.Filter {
	return tal3a.Filter{
		Organizer:     models.Principal(req.OrganizerID),
		GroupID:       req.GroupID,
		Sport:         models.Sport(req.Sport),
		CityID:        req.CityID,
		GovernorateID: req.GovernorateID,
		Status:        models.EventStatus(req.Status),
		From:          fromNanos(req.From),
		To:            fromNanos(req.To),
		MaxCost:       req.MaxCost,
	}
}

func toProtoParticipant(m *models.Membership) *pb.Participant {
	return &pb.Participant{
		EventID:  m.EventID,
		UserID:   string(m.UserID),
		Status:   string(m.Status),
		Notes:    m.Notes,
		JoinedAt: toNanos(m.JoinedAt),
	}
}

func toProtoReview(r *models.Review) *pb.Review {
	return &pb.Review{
		ID:                 r.ID,
		EventID:            r.EventID,
		ReviewerID:         string(r.ReviewerID),
		Rating:             uint32(r.Rating),
		Comment:            r.Comment,
		OrganizationRating: uint32(r.OrganizationRating),
		VenueRating:        uint32(r.VenueRating),
		ValueRating:        uint32(r.ValueRating),
		Verified:           r.Verified,
		HelpfulCount:       r.HelpfulCount,
		ReportedCount:      r.ReportedCount,
		CreatedAt:          toNanos(r.CreatedAt),
		UpdatedAt:          toNanos(r.UpdatedAt),
	}
}

func toProtoReviews(reviews []models.Review) []*pb.Review {
	out := make([]*pb.Review, len(reviews))
	for i := range reviews {
		out[i] = toProtoReview(&reviews[i])
	}
	return out
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func toProtoComment(c *models.Comment) *pb.Comment {
	return &pb.Comment{
		ID:              c.ID,
		EventID:         c.EventID,
		UserID:          string(c.UserID),
		Content:         c.Content,
		ParentCommentID: c.ParentCommentID,
		CreatedAt:       toNanos(c.CreatedAt),
		UpdatedAt:       toNanos(c.UpdatedAt),
	}
}
