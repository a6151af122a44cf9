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

// ReviewService implements the Connect ReviewService.
type ReviewService struct {
	reviews *tal3a.ReviewManager
	logger  *slog.Logger
}

var _ tal3av1connect.ReviewServiceHandler = (*ReviewService)(nil)

// NewReviewService creates a new ReviewService backed by the engine.
func NewReviewService(engine *tal3a.Engine, logger *slog.Logger) *ReviewService {
	return &ReviewService{reviews: engine.Reviews, logger: logger}
}

// CreateReview records the caller's review of a completed event.
func (s *ReviewService) CreateReview(ctx context.Context, req *connect.Request[pb.CreateReviewRequest]) (*connect.Response[pb.CreateReviewResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("CreateReview request received",
		"principal", caller,
		"event_id", req.Msg.EventID,
		"rating", req.Msg.Rating,
	)

	review, err := s.reviews.Create(ctx, caller, tal3a.CreateReviewInput{
		EventID:            req.Msg.EventID,
		Rating:             int(req.Msg.Rating),
		Comment:            req.Msg.Comment,
		OrganizationRating: intPtr(req.Msg.OrganizationRating),
		VenueRating:        intPtr(req.Msg.VenueRating),
		ValueRating:        intPtr(req.Msg.ValueRating),
	})
	if err != nil {
		return nil, fail(s.logger, "CreateReview", err, "event_id", req.Msg.EventID, "principal", caller)
	}

	return connect.NewResponse(&pb.CreateReviewResponse{Review: toProtoReview(review)}), nil
}

// UpdateReview edits the caller's own review.
func (s *ReviewService) UpdateReview(ctx context.Context, req *connect.Request[pb.UpdateReviewRequest]) (*connect.Response[pb.UpdateReviewResponse], error) {
	caller := middleware.GetPrincipal(ctx)

	review, err := s.reviews.Update(ctx, caller, req.Msg.ReviewID, tal3a.ReviewUpdate{
		Rating:             intPtr(req.Msg.Rating),
		Comment:            req.Msg.Comment,
		OrganizationRating: intPtr(req.Msg.OrganizationRating),
		VenueRating:        intPtr(req.Msg.VenueRating),
		ValueRating:        intPtr(req.Msg.ValueRating),
	})
	if err != nil {
		return nil, fail(s.logger, "UpdateReview", err, "review_id", req.Msg.ReviewID)
	}

	return connect.NewResponse(&pb.UpdateReviewResponse{Review: toProtoReview(review)}), nil
}

// DeleteReview removes the caller's own review.
func (s *ReviewService) DeleteReview(ctx context.Context, req *connect.Request[pb.DeleteReviewRequest]) (*connect.Response[pb.DeleteReviewResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("DeleteReview request received", "principal", caller, "review_id", req.Msg.ReviewID)

	if err := s.reviews.Delete(ctx, caller, req.Msg.ReviewID); err != nil {
		return nil, fail(s.logger, "DeleteReview", err, "review_id", req.Msg.ReviewID)
	}

	return connect.NewResponse(&pb.DeleteReviewResponse{}), nil
}

// GetReview retrieves a review by ID.
func (s *ReviewService) GetReview(ctx context.Context, req *connect.Request[pb.GetReviewRequest]) (*connect.Response[pb.GetReviewResponse], error) {
	review, err := s.reviews.Get(ctx, req.Msg.ReviewID)
	if err != nil {
		return nil, fail(s.logger, "GetReview", err, "review_id", req.Msg.ReviewID)
	}

	return connect.NewResponse(&pb.GetReviewResponse{Review: toProtoReview(review)}), nil
}

// ListEventReviews returns an event's reviews, newest first.
func (s *ReviewService) ListEventReviews(ctx context.Context, req *connect.Request[pb.ListEventReviewsRequest]) (*connect.Response[pb.ListEventReviewsResponse], error) {
	reviews, err := s.reviews.ListForEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, fail(s.logger, "ListEventReviews", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.ListEventReviewsResponse{Reviews: toProtoReviews(reviews)}), nil
}

// ListUserReviews returns the reviews a user wrote, the caller by default.
func (s *ReviewService) ListUserReviews(ctx context.Context, req *connect.Request[pb.ListUserReviewsRequest]) (*connect.Response[pb.ListUserReviewsResponse], error) {
	user := models.Principal(req.Msg.UserID)
	if user == "" {
		user = middleware.GetPrincipal(ctx)
	}

	reviews, err := s.reviews.ListByReviewer(ctx, user)
	if err != nil {
		return nil, fail(s.logger, "ListUserReviews", err, "user", user)
	}

	return connect.NewResponse(&pb.ListUserReviewsResponse{Reviews: toProtoReviews(reviews)}), nil
}

// MarkHelpful counts the caller's helpful vote.
func (s *ReviewService) MarkHelpful(ctx context.Context, req *connect.Request[pb.MarkHelpfulRequest]) (*connect.Response[pb.MarkHelpfulResponse], error) {
	caller := middleware.GetPrincipal(ctx)

	review, err := s.reviews.MarkHelpful(ctx, caller, req.Msg.ReviewID)
	if err != nil {
		return nil, fail(s.logger, "MarkHelpful", err, "review_id", req.Msg.ReviewID, "principal", caller)
	}

	return connect.NewResponse(&pb.MarkHelpfulResponse{Review: toProtoReview(review)}), nil
}

// ReportReview counts the caller's report.
func (s *ReviewService) ReportReview(ctx context.Context, req *connect.Request[pb.ReportReviewRequest]) (*connect.Response[pb.ReportReviewResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	s.logger.Info("ReportReview request received", "principal", caller, "review_id", req.Msg.ReviewID)

	review, err := s.reviews.Report(ctx, caller, req.Msg.ReviewID)
	if err != nil {
		return nil, fail(s.logger, "ReportReview", err, "review_id", req.Msg.ReviewID, "principal", caller)
	}

	return connect.NewResponse(&pb.ReportReviewResponse{Review: toProtoReview(review)}), nil
}

// GetAverageRating returns an event's mean rating formatted to one decimal.
func (s *ReviewService) GetAverageRating(ctx context.Context, req *connect.Request[pb.GetAverageRatingRequest]) (*connect.Response[pb.GetAverageRatingResponse], error) {
	average, count, err := s.reviews.AverageRating(ctx, req.Msg.EventID)
	if err != nil {
		return nil, fail(s.logger, "GetAverageRating", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.GetAverageRatingResponse{
		Average:     average,
		ReviewCount: int32(count),
	}), nil
}
