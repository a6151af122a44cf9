package tal3av1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	tal3av1 "github.com/mmynk/tal3a/pkg/api/tal3av1"
)

// ReviewServiceHandler is implemented by the server side of tal3a.v1.ReviewService.
type ReviewServiceHandler interface {
	CreateReview(context.Context, *connect.Request[tal3av1.CreateReviewRequest]) (*connect.Response[tal3av1.CreateReviewResponse], error)
	UpdateReview(context.Context, *connect.Request[tal3av1.UpdateReviewRequest]) (*connect.Response[tal3av1.UpdateReviewResponse], error)
	DeleteReview(context.Context, *connect.Request[tal3av1.DeleteReviewRequest]) (*connect.Response[tal3av1.DeleteReviewResponse], error)
	GetReview(context.Context, *connect.Request[tal3av1.GetReviewRequest]) (*connect.Response[tal3av1.GetReviewResponse], error)
	ListEventReviews(context.Context, *connect.Request[tal3av1.ListEventReviewsRequest]) (*connect.Response[tal3av1.ListEventReviewsResponse], error)
	ListUserReviews(context.Context, *connect.Request[tal3av1.ListUserReviewsRequest]) (*connect.Response[tal3av1.ListUserReviewsResponse], error)
	MarkHelpful(context.Context, *connect.Request[tal3av1.MarkHelpfulRequest]) (*connect.Response[tal3av1.MarkHelpfulResponse], error)
	ReportReview(context.Context, *connect.Request[tal3av1.ReportReviewRequest]) (*connect.Response[tal3av1.ReportReviewResponse], error)
	GetAverageRating(context.Context, *connect.Request[tal3av1.GetAverageRatingRequest]) (*connect.Response[tal3av1.GetAverageRatingResponse], error)
}

// NewReviewServiceHandler builds an HTTP handler serving every ReviewService procedure.
// Mount it at the returned path.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	unaryHandler(mux, ReviewServiceName, "CreateReview", svc.CreateReview, opts)
	unaryHandler(mux, ReviewServiceName, "UpdateReview", svc.UpdateReview, opts)
	unaryHandler(mux, ReviewServiceName, "DeleteReview", svc.DeleteReview, opts)
	unaryHandler(mux, ReviewServiceName, "GetReview", svc.GetReview, opts)
	unaryHandler(mux, ReviewServiceName, "ListEventReviews", svc.ListEventReviews, opts)
	unaryHandler(mux, ReviewServiceName, "ListUserReviews", svc.ListUserReviews, opts)
	unaryHandler(mux, ReviewServiceName, "MarkHelpful", svc.MarkHelpful, opts)
	unaryHandler(mux, ReviewServiceName, "ReportReview", svc.ReportReview, opts)
	unaryHandler(mux, ReviewServiceName, "GetAverageRating", svc.GetAverageRating, opts)
	return servicePath(ReviewServiceName), mux
}

// ReviewServiceClient is a client for tal3a.v1.ReviewService.
type ReviewServiceClient interface {
	CreateReview(context.Context, *connect.Request[tal3av1.CreateReviewRequest]) (*connect.Response[tal3av1.CreateReviewResponse], error)
	UpdateReview(context.Context, *connect.Request[tal3av1.UpdateReviewRequest]) (*connect.Response[tal3av1.UpdateReviewResponse], error)
	DeleteReview(context.Context, *connect.Request[tal3av1.DeleteReviewRequest]) (*connect.Response[tal3av1.DeleteReviewResponse], error)
	GetReview(context.Context, *connect.Request[tal3av1.GetReviewRequest]) (*connect.Response[tal3av1.GetReviewResponse], error)
	ListEventReviews(context.Context, *connect.Request[tal3av1.ListEventReviewsRequest]) (*connect.Response[tal3av1.ListEventReviewsResponse], error)
	ListUserReviews(context.Context, *connect.Request[tal3av1.ListUserReviewsRequest]) (*connect.Response[tal3av1.ListUserReviewsResponse], error)
	MarkHelpful(context.Context, *connect.Request[tal3av1.MarkHelpfulRequest]) (*connect.Response[tal3av1.MarkHelpfulResponse], error)
	ReportReview(context.Context, *connect.Request[tal3av1.ReportReviewRequest]) (*connect.Response[tal3av1.ReportReviewResponse], error)
	GetAverageRating(context.Context, *connect.Request[tal3av1.GetAverageRatingRequest]) (*connect.Response[tal3av1.GetAverageRatingResponse], error)
}

// NewReviewServiceClient constructs a client for the service at baseURL.
func NewReviewServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReviewServiceClient {
	return &reviewServiceClient{
		createReview:     unaryClient[tal3av1.CreateReviewRequest, tal3av1.CreateReviewResponse](httpClient, baseURL, ReviewServiceName, "CreateReview", opts),
		updateReview:     unaryClient[tal3av1.UpdateReviewRequest, tal3av1.UpdateReviewResponse](httpClient, baseURL, ReviewServiceName, "UpdateReview", opts),
		deleteReview:     unaryClient[tal3av1.DeleteReviewRequest, tal3av1.DeleteReviewResponse](httpClient, baseURL, ReviewServiceName, "DeleteReview", opts),
		getReview:        unaryClient[tal3av1.GetReviewRequest, tal3av1.GetReviewResponse](httpClient, baseURL, ReviewServiceName, "GetReview", opts),
		listEventReviews: unaryClient[tal3av1.ListEventReviewsRequest, tal3av1.ListEventReviewsResponse](httpClient, baseURL, ReviewServiceName, "ListEventReviews", opts),
		listUserReviews:  unaryClient[tal3av1.ListUserReviewsRequest, tal3av1.ListUserReviewsResponse](httpClient, baseURL, ReviewServiceName, "ListUserReviews", opts),
		markHelpful:      unaryClient[tal3av1.MarkHelpfulRequest, tal3av1.MarkHelpfulResponse](httpClient, baseURL, ReviewServiceName, "MarkHelpful", opts),
		reportReview:     unaryClient[tal3av1.ReportReviewRequest, tal3av1.ReportReviewResponse](httpClient, baseURL, ReviewServiceName, "ReportReview", opts),
		getAverageRating: unaryClient[tal3av1.GetAverageRatingRequest, tal3av1.GetAverageRatingResponse](httpClient, baseURL, ReviewServiceName, "GetAverageRating", opts),
	}
}

type reviewServiceClient struct {
	createReview     *connect.Client[tal3av1.CreateReviewRequest, tal3av1.CreateReviewResponse]
	updateReview     *connect.Client[tal3av1.UpdateReviewRequest, tal3av1.UpdateReviewResponse]
	deleteReview     *connect.Client[tal3av1.DeleteReviewRequest, tal3av1.DeleteReviewResponse]
	getReview        *connect.Client[tal3av1.GetReviewRequest, tal3av1.GetReviewResponse]
	listEventReviews *connect.Client[tal3av1.ListEventReviewsRequest, tal3av1.ListEventReviewsResponse]
	listUserReviews  *connect.Client[tal3av1.ListUserReviewsRequest, tal3av1.ListUserReviewsResponse]
	markHelpful      *connect.Client[tal3av1.MarkHelpfulRequest, tal3av1.MarkHelpfulResponse]
	reportReview     *connect.Client[tal3av1.ReportReviewRequest, tal3av1.ReportReviewResponse]
	getAverageRating *connect.Client[tal3av1.GetAverageRatingRequest, tal3av1.GetAverageRatingResponse]
}

func (c *reviewServiceClient) CreateReview(ctx context.Context, req *connect.Request[tal3av1.CreateReviewRequest]) (*connect.Response[tal3av1.CreateReviewResponse], error) {
	return c.createReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) UpdateReview(ctx context.Context, req *connect.Request[tal3av1.UpdateReviewRequest]) (*connect.Response[tal3av1.UpdateReviewResponse], error) {
	return c.updateReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) DeleteReview(ctx context.Context, req *connect.Request[tal3av1.DeleteReviewRequest]) (*connect.Response[tal3av1.DeleteReviewResponse], error) {
	return c.deleteReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) GetReview(ctx context.Context, req *connect.Request[tal3av1.GetReviewRequest]) (*connect.Response[tal3av1.GetReviewResponse], error) {
	return c.getReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) ListEventReviews(ctx context.Context, req *connect.Request[tal3av1.ListEventReviewsRequest]) (*connect.Response[tal3av1.ListEventReviewsResponse], error) {
	return c.listEventReviews.CallUnary(ctx, req)
}

func (c *reviewServiceClient) ListUserReviews(ctx context.Context, req *connect.Request[tal3av1.ListUserReviewsRequest]) (*connect.Response[tal3av1.ListUserReviewsResponse], error) {
	return c.listUserReviews.CallUnary(ctx, req)
}

func (c *reviewServiceClient) MarkHelpful(ctx context.Context, req *connect.Request[tal3av1.MarkHelpfulRequest]) (*connect.Response[tal3av1.MarkHelpfulResponse], error) {
	return c.markHelpful.CallUnary(ctx, req)
}

func (c *reviewServiceClient) ReportReview(ctx context.Context, req *connect.Request[tal3av1.ReportReviewRequest]) (*connect.Response[tal3av1.ReportReviewResponse], error) {
	return c.reportReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) GetAverageRating(ctx context.Context, req *connect.Request[tal3av1.GetAverageRatingRequest]) (*connect.Response[tal3av1.GetAverageRatingResponse], error) {
	return c.getAverageRating.CallUnary(ctx, req)
}
