package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/tal3a/internal/middleware"
	"github.com/mmynk/tal3a/internal/tal3a"
	pb "github.com/mmynk/tal3a/pkg/api/tal3av1"
	"github.com/mmynk/tal3a/pkg/api/tal3av1/tal3av1connect"
)

// CommentService implements the Connect CommentService.
type CommentService struct {
	comments *tal3a.CommentManager
	logger   *slog.Logger
}

var _ tal3av1connect.CommentServiceHandler = (*CommentService)(nil)

// NewCommentService creates a new CommentService backed by the engine.
func NewCommentService(engine *tal3a.Engine, logger *slog.Logger) *CommentService {
	return &CommentService{comments: engine.Comments, logger: logger}
}

func (s *CommentService) CreateComment(ctx context.Context, req *connect.Request[pb.CreateCommentRequest]) (*connect.Response[pb.CreateCommentResponse], error) {
	caller := middleware.GetPrincipal(ctx)

	comment, err := s.comments.Create(ctx, caller, req.Msg.EventID, req.Msg.Content, req.Msg.ParentCommentID)
	if err != nil {
		return nil, fail(s.logger, "CreateComment", err, "event_id", req.Msg.EventID)
	}

	return connect.NewResponse(&pb.CreateCommentResponse{Comment: toProtoComment(comment)}), nil
}

func (s *CommentService) UpdateComment(ctx context.Context, req *connect.Request[pb.UpdateCommentRequest]) (*connect.Response[pb.UpdateCommentResponse], error) {
	caller := middleware.GetPrincipal(ctx)

	comment, err := s.comments.Update(ctx, caller, req.Msg.CommentID, req.Msg.Content)
	if err != nil {
		return nil, fail(s.logger, "UpdateComment", err, "comment_id", req.Msg.CommentID)
	}

	return connect.NewResponse(&pb.UpdateCommentResponse{Comment: toProtoComment(comment)}), nil
}

func (s *CommentService) DeleteComment(ctx context.Context, req *connect.Request[pb.DeleteCommentRequest]) (*connect.Response[pb.DeleteCommentResponse], error) {
	caller := middleware.GetPrincipal(ctx)

	if err := s.comments.Delete(ctx, caller, req.Msg.CommentID); err != nil {
		return nil, fail(s.logger, "DeleteComment", err, "comment_id", req.Msg.CommentID)
	}

	return connect.NewResponse(&pb.DeleteCommentResponse{}), nil
}

func (s *CommentService) ListComments(ctx context.Context, req *connect.Request[pb.ListCommentsRequest]) (*connect.Response[pb.ListCommentsResponse], error) {
	comments, err := s.comments.List(ctx, req.Msg.EventID)
	if err != nil {
		return nil, fail(s.logger, "ListComments", err, "event_id", req.Msg.EventID)
	}

	out := make([]*pb.Comment, len(comments))
	for i := range comments {
		out[i] = toProtoComment(&comments[i])
	}

	return connect.NewResponse(&pb.ListCommentsResponse{Comments: out}), nil
}
