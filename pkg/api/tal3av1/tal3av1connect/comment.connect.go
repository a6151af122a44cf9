package tal3av1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	tal3av1 "github.com/mmynk/tal3a/pkg/api/tal3av1"
)

// CommentServiceHandler is implemented by the server side of tal3a.v1.CommentService.
type CommentServiceHandler interface {
	CreateComment(context.Context, *connect.Request[tal3av1.CreateCommentRequest]) (*connect.Response[tal3av1.CreateCommentResponse], error)
	UpdateComment(context.Context, *connect.Request[tal3av1.UpdateCommentRequest]) (*connect.Response[tal3av1.UpdateCommentResponse], error)
	DeleteComment(context.Context, *connect.Request[tal3av1.DeleteCommentRequest]) (*connect.Response[tal3av1.DeleteCommentResponse], error)
	ListComments(context.Context, *connect.Request[tal3av1.ListCommentsRequest]) (*connect.Response[tal3av1.ListCommentsResponse], error)
}

// NewCommentServiceHandler builds an HTTP handler serving every CommentService procedure.
// Mount it at the returned path.
func NewCommentServiceHandler(svc CommentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	unaryHandler(mux, CommentServiceName, "CreateComment", svc.CreateComment, opts)
	unaryHandler(mux, CommentServiceName, "UpdateComment", svc.UpdateComment, opts)
	unaryHandler(mux, CommentServiceName, "DeleteComment", svc.DeleteComment, opts)
	unaryHandler(mux, CommentServiceName, "ListComments", svc.ListComments, opts)
	return servicePath(CommentServiceName), mux
}

// CommentServiceClient is a client for tal3a.v1.CommentService.
type CommentServiceClient interface {
	CreateComment(context.Context, *connect.Request[tal3av1.CreateCommentRequest]) (*connect.Response[tal3av1.CreateCommentResponse], error)
	UpdateComment(context.Context, *connect.Request[tal3av1.UpdateCommentRequest]) (*connect.Response[tal3av1.UpdateCommentResponse], error)
	DeleteComment(context.Context, *connect.Request[tal3av1.DeleteCommentRequest]) (*connect.Response[tal3av1.DeleteCommentResponse], error)
	ListComments(context.Context, *connect.Request[tal3av1.ListCommentsRequest]) (*connect.Response[tal3av1.ListCommentsResponse], error)
}

// NewCommentServiceClient constructs a client for the service at baseURL.
func NewCommentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CommentServiceClient {
	return &commentServiceClient{
		createComment: unaryClient[tal3av1.CreateCommentRequest, tal3av1.CreateCommentResponse](httpClient, baseURL, CommentServiceName, "CreateComment", opts),
		updateComment: unaryClient[tal3av1.UpdateCommentRequest, tal3av1.UpdateCommentResponse](httpClient, baseURL, CommentServiceName, "UpdateComment", opts),
		deleteComment: unaryClient[tal3av1.DeleteCommentRequest, tal3av1.DeleteCommentResponse](httpClient, baseURL, CommentServiceName, "DeleteComment", opts),
		listComments:  unaryClient[tal3av1.ListCommentsRequest, tal3av1.ListCommentsResponse](httpClient, baseURL, CommentServiceName, "ListComments", opts),
	}
}

type commentServiceClient struct {
	createComment *connect.Client[tal3av1.CreateCommentRequest, tal3av1.CreateCommentResponse]
	updateComment *connect.Client[tal3av1.UpdateCommentRequest, tal3av1.UpdateCommentResponse]
	deleteComment *connect.Client[tal3av1.DeleteCommentRequest, tal3av1.DeleteCommentResponse]
	listComments  *connect.Client[tal3av1.ListCommentsRequest, tal3av1.ListCommentsResponse]
}

func (c *commentServiceClient) CreateComment(ctx context.Context, req *connect.Request[tal3av1.CreateCommentRequest]) (*connect.Response[tal3av1.CreateCommentResponse], error) {
	return c.createComment.CallUnary(ctx, req)
}

func (c *commentServiceClient) UpdateComment(ctx context.Context, req *connect.Request[tal3av1.UpdateCommentRequest]) (*connect.Response[tal3av1.UpdateCommentResponse], error) {
	return c.updateComment.CallUnary(ctx, req)
}

func (c *commentServiceClient) DeleteComment(ctx context.Context, req *connect.Request[tal3av1.DeleteCommentRequest]) (*connect.Response[tal3av1.DeleteCommentResponse], error) {
	return c.deleteComment.CallUnary(ctx, req)
}

func (c *commentServiceClient) ListComments(ctx context.Context, req *connect.Request[tal3av1.ListCommentsRequest]) (*connect.Response[tal3av1.ListCommentsResponse], error) {
	return c.listComments.CallUnary(ctx, req)
}
