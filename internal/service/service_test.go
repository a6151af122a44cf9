package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/auth"
	"github.com/mmynk/tal3a/internal/groups"
	"github.com/mmynk/tal3a/internal/middleware"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage/sqlite"
	"github.com/mmynk/tal3a/internal/tal3a"
	pb "github.com/mmynk/tal3a/pkg/api/tal3av1"
	"github.com/mmynk/tal3a/pkg/api/tal3av1/tal3av1connect"
)

const testSecret = "service-test-secret-0123"

type testClients struct {
	events       tal3av1connect.EventServiceClient
	participants tal3av1connect.ParticipantServiceClient
	reviews      tal3av1connect.ReviewServiceClient
	comments     tal3av1connect.CommentServiceClient
	utility      tal3av1connect.UtilityServiceClient
	jwt          *auth.JWTManager
	clock        *time.Time
}

// setupTestServer starts an httptest server with every service mounted on a
// fresh SQLite store.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	now := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	directory := groups.NewStatic(models.Group{ID: 1, Name: "Maadi Runners", Sport: models.SportRunning, CityID: 101, GovernorateID: 1})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := tal3a.NewEngine(store, directory,
		tal3a.WithClock(func() time.Time { return now }),
		tal3a.WithLogger(logger),
	)
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)

	server := &Server{
		Engine:      engine,
		Verifier:    jwtManager,
		StoreName:   "sqlite",
		Logger:      logger,
		Metrics:     middleware.NewMetrics(prometheus.NewRegistry()),
		RateLimiter: middleware.NewRateLimiter(0, 0),
	}
	mux := http.NewServeMux()
	server.Register(mux)
	httpServer := httptest.NewServer(mux)

	t.Cleanup(func() {
		httpServer.Close()
		store.Close()
	})

	return &testClients{
		events:       tal3av1connect.NewEventServiceClient(http.DefaultClient, httpServer.URL),
		participants: tal3av1connect.NewParticipantServiceClient(http.DefaultClient, httpServer.URL),
		reviews:      tal3av1connect.NewReviewServiceClient(http.DefaultClient, httpServer.URL),
		comments:     tal3av1connect.NewCommentServiceClient(http.DefaultClient, httpServer.URL),
		utility:      tal3av1connect.NewUtilityServiceClient(http.DefaultClient, httpServer.URL),
		jwt:          jwtManager,
		clock:        &now,
	}
}

// as builds a request authenticated as p.
func as[T any](t *testing.T, c *testClients, p models.Principal, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := c.jwt.Generate(p, "")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func expectConnectError(t *testing.T, err error, code connect.Code, domain apperr.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", domain)
	}
	if got := connect.CodeOf(err); got != code {
		t.Errorf("connect code: expected %s, got %s (%v)", code, got, err)
	}
	if domain != "" {
		if got := apperr.FromConnect(err); got != domain {
			t.Errorf("domain code: expected %s, got %s", domain, got)
		}
	}
}

func (c *testClients) createEvent(t *testing.T, maxParticipants int32) *pb.Event {
	t.Helper()
	resp, err := c.events.CreateEvent(context.Background(), as(t, c, "organizer", &pb.CreateEventRequest{
		GroupID:         1,
		Title:           "Corniche run",
		Description:     "10k easy pace",
		ScheduledTime:   c.clock.Add(24 * time.Hour).UnixNano(),
		Place:           "Maadi Corniche",
		MaxParticipants: maxParticipants,
		Sport:           string(models.SportRunning),
	}))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return resp.Msg.Event
}

func TestCreateAndGetEvent(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	event := c.createEvent(t, 2)
	if event.ID != 1 {
		t.Errorf("ID: expected 1, got %d", event.ID)
	}
	if event.Status != "Active" {
		t.Errorf("Status: expected 'Active', got '%s'", event.Status)
	}
	if event.CreatorID != "organizer" {
		t.Errorf("CreatorID: expected 'organizer', got '%s'", event.CreatorID)
	}
	if event.CityID != 101 || event.GovernorateID != 1 {
		t.Errorf("location: expected 101/1, got %d/%d", event.CityID, event.GovernorateID)
	}

	got, err := c.events.GetEvent(ctx, as(t, c, "alice", &pb.GetEventRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Msg.Event.Title != "Corniche run" {
		t.Errorf("Title: expected 'Corniche run', got '%s'", got.Msg.Event.Title)
	}
	if got.Msg.Event.ScheduledTime != event.ScheduledTime {
		t.Errorf("ScheduledTime: expected %d, got %d", event.ScheduledTime, got.Msg.Event.ScheduledTime)
	}

	_, err = c.events.GetEvent(ctx, as(t, c, "alice", &pb.GetEventRequest{EventID: 404}))
	expectConnectError(t, err, connect.CodeNotFound, apperr.CodeEventNotFound)
}

func TestCreateEventValidationError(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.events.CreateEvent(context.Background(), as(t, c, "organizer", &pb.CreateEventRequest{
		GroupID:         1,
		Title:           "",
		Place:           "Somewhere",
		ScheduledTime:   c.clock.Add(time.Hour).UnixNano(),
		MaxParticipants: 5,
		Sport:           string(models.SportFootball),
	}))
	expectConnectError(t, err, connect.CodeInvalidArgument, apperr.CodeTitleEmpty)

	list, err := c.events.ListEvents(context.Background(), as(t, c, "organizer", &pb.ListEventsRequest{}))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if list.Msg.Total != 0 {
		t.Errorf("expected no events, got %d", list.Msg.Total)
	}
}

func TestRequiresAuthentication(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.events.GetEvent(context.Background(), connect.NewRequest(&pb.GetEventRequest{EventID: 1}))
	expectConnectError(t, err, connect.CodeUnauthenticated, "")

	bad := connect.NewRequest(&pb.GetEventRequest{EventID: 1})
	bad.Header().Set("Authorization", "Bearer forged")
	_, err = c.events.GetEvent(context.Background(), bad)
	expectConnectError(t, err, connect.CodeUnauthenticated, "")
}

func TestParticipationFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	event := c.createEvent(t, 2)

	for _, user := range []models.Principal{"alice", "bob"} {
		if _, err := c.participants.JoinEvent(ctx, as(t, c, user, &pb.JoinEventRequest{EventID: event.ID})); err != nil {
			t.Fatalf("JoinEvent(%s) failed: %v", user, err)
		}
	}

	status, err := c.events.GetEventStatus(ctx, as(t, c, "alice", &pb.GetEventStatusRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("GetEventStatus failed: %v", err)
	}
	if status.Msg.Status != "Full" {
		t.Errorf("Status: expected 'Full', got '%s'", status.Msg.Status)
	}

	_, err = c.participants.JoinEvent(ctx, as(t, c, "carol", &pb.JoinEventRequest{EventID: event.ID}))
	expectConnectError(t, err, connect.CodeFailedPrecondition, apperr.CodeEventFull)

	_, err = c.participants.JoinEvent(ctx, as(t, c, "alice", &pb.JoinEventRequest{EventID: event.ID}))
	expectConnectError(t, err, connect.CodeAlreadyExists, apperr.CodeAlreadyParticipant)

	if _, err := c.participants.LeaveEvent(ctx, as(t, c, "alice", &pb.LeaveEventRequest{EventID: event.ID})); err != nil {
		t.Fatalf("LeaveEvent failed: %v", err)
	}
	if _, err := c.participants.JoinEvent(ctx, as(t, c, "carol", &pb.JoinEventRequest{EventID: event.ID, Notes: "late by 5"})); err != nil {
		t.Fatalf("JoinEvent(carol) failed: %v", err)
	}

	roster, err := c.participants.ListParticipants(ctx, as(t, c, "organizer", &pb.ListParticipantsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(roster.Msg.Participants) != 2 || roster.Msg.Participants[1].Notes != "late by 5" {
		t.Errorf("unexpected roster %+v", roster.Msg.Participants)
	}

	_, err = c.participants.UpdateParticipantStatus(ctx, as(t, c, "bob", &pb.UpdateParticipantStatusRequest{
		EventID: event.ID, ParticipantID: "carol", Status: "Maybe",
	}))
	expectConnectError(t, err, connect.CodePermissionDenied, apperr.CodeNotCreator)

	updated, err := c.participants.UpdateParticipantStatus(ctx, as(t, c, "organizer", &pb.UpdateParticipantStatusRequest{
		EventID: event.ID, ParticipantID: "carol", Status: "Maybe",
	}))
	if err != nil {
		t.Fatalf("UpdateParticipantStatus failed: %v", err)
	}
	if updated.Msg.Participant.Status != "Maybe" {
		t.Errorf("Status: expected 'Maybe', got '%s'", updated.Msg.Participant.Status)
	}

	history, err := c.participants.ListHistory(ctx, as(t, c, "carol", &pb.ListHistoryRequest{}))
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history.Msg.Events) != 1 || history.Msg.Events[0].ID != event.ID {
		t.Errorf("expected carol's history to hold event %d, got %+v", event.ID, history.Msg.Events)
	}
}

func TestEventLifecycle(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	event := c.createEvent(t, 10)

	title := "Corniche tempo run"
	capacity := int32(12)
	updated, err := c.events.UpdateEvent(ctx, as(t, c, "organizer", &pb.UpdateEventRequest{
		EventID: event.ID, Title: &title, MaxParticipants: &capacity,
	}))
	if err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if updated.Msg.Event.Title != title || updated.Msg.Event.MaxParticipants != 12 {
		t.Errorf("unexpected updated event %+v", updated.Msg.Event)
	}

	_, err = c.events.UpdateEventStatus(ctx, as(t, c, "alice", &pb.UpdateEventStatusRequest{EventID: event.ID, Status: "Cancelled"}))
	expectConnectError(t, err, connect.CodePermissionDenied, apperr.CodeNotCreator)

	if _, err := c.events.UpdateEventStatus(ctx, as(t, c, "organizer", &pb.UpdateEventStatusRequest{EventID: event.ID, Status: "Cancelled"})); err != nil {
		t.Fatalf("UpdateEventStatus failed: %v", err)
	}
	_, err = c.events.UpdateEventStatus(ctx, as(t, c, "organizer", &pb.UpdateEventStatusRequest{EventID: event.ID, Status: "Active"}))
	expectConnectError(t, err, connect.CodeFailedPrecondition, apperr.CodeInvalidTransition)

	organized, err := c.events.ListOrganizedEvents(ctx, as(t, c, "organizer", &pb.ListOrganizedEventsRequest{}))
	if err != nil {
		t.Fatalf("ListOrganizedEvents failed: %v", err)
	}
	if len(organized.Msg.Events) != 1 {
		t.Errorf("expected 1 organized event, got %d", len(organized.Msg.Events))
	}

	if _, err := c.events.DeleteEvent(ctx, as(t, c, "organizer", &pb.DeleteEventRequest{EventID: event.ID})); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	list, err := c.events.ListEvents(ctx, as(t, c, "organizer", &pb.ListEventsRequest{Sport: string(models.SportRunning)}))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if list.Msg.Total != 0 {
		t.Errorf("expected deleted event to be gone from listings, got %d", list.Msg.Total)
	}
}

func TestListEventsPaging(t *testing.T) {
	c := setupTestServer(t)
	for range 5 {
		c.createEvent(t, 4)
	}

	resp, err := c.events.ListEvents(context.Background(), as(t, c, "alice", &pb.ListEventsRequest{
		CityID: 101, Page: 2, PageSize: 2,
	}))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if resp.Msg.Total != 5 || len(resp.Msg.Events) != 2 || !resp.Msg.HasNext {
		t.Errorf("unexpected page %+v", resp.Msg)
	}
	if resp.Msg.Events[0].ID != 3 {
		t.Errorf("expected page 2 to start at event 3, got %d", resp.Msg.Events[0].ID)
	}
}

func TestListEventsLocationOutOfRange(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	c.createEvent(t, 4)

	// 101+65536 and 1+256 narrow to the seeded group's city and governorate.
	_, err := c.events.ListEvents(ctx, as(t, c, "alice", &pb.ListEventsRequest{CityID: 101 + 1<<16}))
	expectConnectError(t, err, connect.CodeInvalidArgument, apperr.CodeLocationInvalid)

	_, err = c.events.ListEvents(ctx, as(t, c, "alice", &pb.ListEventsRequest{GovernorateID: 1 + 1<<8}))
	expectConnectError(t, err, connect.CodeInvalidArgument, apperr.CodeLocationInvalid)

	resp, err := c.events.ListEvents(ctx, as(t, c, "alice", &pb.ListEventsRequest{CityID: 101, GovernorateID: 1}))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if resp.Msg.Total != 1 {
		t.Errorf("expected 1 event in city 101, got %d", resp.Msg.Total)
	}
}

func TestReviewFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	event := c.createEvent(t, 5)

	for _, user := range []models.Principal{"alice", "bob", "carol"} {
		if _, err := c.participants.JoinEvent(ctx, as(t, c, user, &pb.JoinEventRequest{EventID: event.ID})); err != nil {
			t.Fatalf("JoinEvent(%s) failed: %v", user, err)
		}
	}

	_, err := c.reviews.CreateReview(ctx, as(t, c, "alice", &pb.CreateReviewRequest{EventID: event.ID, Rating: 5}))
	expectConnectError(t, err, connect.CodeFailedPrecondition, apperr.CodeEventNotCompleted)

	if _, err := c.events.UpdateEventStatus(ctx, as(t, c, "organizer", &pb.UpdateEventStatusRequest{EventID: event.ID, Status: "Completed"})); err != nil {
		t.Fatalf("UpdateEventStatus failed: %v", err)
	}

	var first *pb.Review
	for user, rating := range map[models.Principal]int32{"alice": 5, "bob": 4, "carol": 3} {
		resp, err := c.reviews.CreateReview(ctx, as(t, c, user, &pb.CreateReviewRequest{EventID: event.ID, Rating: rating}))
		if err != nil {
			t.Fatalf("CreateReview(%s) failed: %v", user, err)
		}
		if user == "alice" {
			first = resp.Msg.Review
		}
	}

	_, err = c.reviews.CreateReview(ctx, as(t, c, "alice", &pb.CreateReviewRequest{EventID: event.ID, Rating: 1}))
	expectConnectError(t, err, connect.CodeAlreadyExists, apperr.CodeAlreadyReviewed)

	_, err = c.reviews.CreateReview(ctx, as(t, c, "mallory", &pb.CreateReviewRequest{EventID: event.ID, Rating: 1}))
	expectConnectError(t, err, connect.CodePermissionDenied, apperr.CodeNotParticipant)

	avg, err := c.reviews.GetAverageRating(ctx, as(t, c, "organizer", &pb.GetAverageRatingRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("GetAverageRating failed: %v", err)
	}
	if avg.Msg.Average != "4.0" || avg.Msg.ReviewCount != 3 {
		t.Errorf("expected '4.0' over 3, got '%s' over %d", avg.Msg.Average, avg.Msg.ReviewCount)
	}

	helpful, err := c.reviews.MarkHelpful(ctx, as(t, c, "bob", &pb.MarkHelpfulRequest{ReviewID: first.ID}))
	if err != nil {
		t.Fatalf("MarkHelpful failed: %v", err)
	}
	if helpful.Msg.Review.HelpfulCount != 1 {
		t.Errorf("HelpfulCount: expected 1, got %d", helpful.Msg.Review.HelpfulCount)
	}
	_, err = c.reviews.MarkHelpful(ctx, as(t, c, "bob", &pb.MarkHelpfulRequest{ReviewID: first.ID}))
	expectConnectError(t, err, connect.CodeAlreadyExists, apperr.CodeAlreadyMarked)

	if _, err := c.reviews.ReportReview(ctx, as(t, c, "carol", &pb.ReportReviewRequest{ReviewID: first.ID})); err != nil {
		t.Fatalf("ReportReview failed: %v", err)
	}

	list, err := c.reviews.ListEventReviews(ctx, as(t, c, "organizer", &pb.ListEventReviewsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("ListEventReviews failed: %v", err)
	}
	if len(list.Msg.Reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(list.Msg.Reviews))
	}
	if list.Msg.Reviews[0].ID < list.Msg.Reviews[2].ID {
		t.Errorf("expected newest review first, got ids %d..%d", list.Msg.Reviews[0].ID, list.Msg.Reviews[2].ID)
	}

	mine, err := c.reviews.ListUserReviews(ctx, as(t, c, "alice", &pb.ListUserReviewsRequest{}))
	if err != nil {
		t.Fatalf("ListUserReviews failed: %v", err)
	}
	if len(mine.Msg.Reviews) != 1 || mine.Msg.Reviews[0].ReportedCount != 1 {
		t.Errorf("unexpected reviews for alice %+v", mine.Msg.Reviews)
	}

	comment := "Even better in hindsight"
	if _, err := c.reviews.UpdateReview(ctx, as(t, c, "alice", &pb.UpdateReviewRequest{ReviewID: first.ID, Comment: &comment})); err != nil {
		t.Fatalf("UpdateReview failed: %v", err)
	}
	got, err := c.reviews.GetReview(ctx, as(t, c, "bob", &pb.GetReviewRequest{ReviewID: first.ID}))
	if err != nil {
		t.Fatalf("GetReview failed: %v", err)
	}
	if got.Msg.Review.Comment != comment || !got.Msg.Review.Verified {
		t.Errorf("unexpected review %+v", got.Msg.Review)
	}

	if _, err := c.reviews.DeleteReview(ctx, as(t, c, "alice", &pb.DeleteReviewRequest{ReviewID: first.ID})); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}
	_, err = c.reviews.GetReview(ctx, as(t, c, "bob", &pb.GetReviewRequest{ReviewID: first.ID}))
	expectConnectError(t, err, connect.CodeNotFound, apperr.CodeReviewNotFound)
}

func TestCommentFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	event := c.createEvent(t, 5)

	root, err := c.comments.CreateComment(ctx, as(t, c, "alice", &pb.CreateCommentRequest{EventID: event.ID, Content: "Pace?"}))
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	parent := root.Msg.Comment.ID
	if _, err := c.comments.CreateComment(ctx, as(t, c, "organizer", &pb.CreateCommentRequest{
		EventID: event.ID, Content: "6:00/km", ParentCommentID: &parent,
	})); err != nil {
		t.Fatalf("CreateComment reply failed: %v", err)
	}

	_, err = c.comments.UpdateComment(ctx, as(t, c, "bob", &pb.UpdateCommentRequest{CommentID: parent, Content: "hijack"}))
	expectConnectError(t, err, connect.CodePermissionDenied, apperr.CodeNotAuthor)

	if _, err := c.comments.UpdateComment(ctx, as(t, c, "alice", &pb.UpdateCommentRequest{CommentID: parent, Content: "Pace and distance?"})); err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}

	list, err := c.comments.ListComments(ctx, as(t, c, "bob", &pb.ListCommentsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(list.Msg.Comments) != 2 || list.Msg.Comments[0].Content != "Pace and distance?" {
		t.Errorf("unexpected comments %+v", list.Msg.Comments)
	}
	if list.Msg.Comments[1].ParentCommentID == nil || *list.Msg.Comments[1].ParentCommentID != parent {
		t.Errorf("expected reply to reference comment %d", parent)
	}

	if _, err := c.comments.DeleteComment(ctx, as(t, c, "alice", &pb.DeleteCommentRequest{CommentID: parent})); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	list, _ = c.comments.ListComments(ctx, as(t, c, "bob", &pb.ListCommentsRequest{EventID: event.ID}))
	if len(list.Msg.Comments) != 1 {
		t.Errorf("expected 1 comment after delete, got %d", len(list.Msg.Comments))
	}
}

func TestUtilityService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	health, err := c.utility.Health(ctx, connect.NewRequest(&pb.HealthRequest{}))
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if health.Msg.Status != "ok" || health.Msg.Store != "sqlite" {
		t.Errorf("unexpected health %+v", health.Msg)
	}
	if health.Header().Get(middleware.RequestIDHeader) == "" {
		t.Errorf("expected a request id header on the response")
	}

	if _, err := c.utility.Now(ctx, connect.NewRequest(&pb.NowRequest{})); err != nil {
		t.Fatalf("Now failed: %v", err)
	}

	_, err = c.utility.WhoAmI(ctx, connect.NewRequest(&pb.WhoAmIRequest{}))
	expectConnectError(t, err, connect.CodeUnauthenticated, apperr.CodeUnauthenticated)

	who, err := c.utility.WhoAmI(ctx, as(t, c, "alice", &pb.WhoAmIRequest{}))
	if err != nil {
		t.Fatalf("WhoAmI failed: %v", err)
	}
	if who.Msg.Principal != "alice" {
		t.Errorf("Principal: expected 'alice', got '%s'", who.Msg.Principal)
	}

	c.createEvent(t, 3)
	compact, err := c.utility.CompactIndex(ctx, as(t, c, "organizer", &pb.CompactIndexRequest{Index: "events", Value: "all"}))
	if err != nil {
		t.Fatalf("CompactIndex failed: %v", err)
	}
	if compact.Msg.Dropped != 0 {
		t.Errorf("expected nothing to compact, got %d", compact.Msg.Dropped)
	}

	_, err = c.utility.CompactIndex(ctx, as(t, c, "organizer", &pb.CompactIndexRequest{Index: "event-reviews", Value: "1"}))
	expectConnectError(t, err, connect.CodeInvalidArgument, apperr.CodeIndexInvalid)
}

func TestRejectsUnknownFields(t *testing.T) {
	c := setupTestServer(t)

	var codec pb.Codec
	var msg pb.GetEventRequest
	err := codec.Unmarshal([]byte(`{"event_id":1,"evnt":2}`), &msg)
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}

	_, err = c.events.GetEvent(context.Background(), as(t, c, "alice", &pb.GetEventRequest{EventID: 1}))
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %v", err)
	}
	if connectErr.Meta().Get(middleware.RequestIDHeader) == "" {
		t.Errorf("expected request id on error metadata")
	}
}
