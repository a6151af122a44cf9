package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mmynk/tal3a/internal/auth"
	"github.com/mmynk/tal3a/internal/middleware"
	"github.com/mmynk/tal3a/internal/tal3a"
	"github.com/mmynk/tal3a/pkg/api/tal3av1/tal3av1connect"
)

// Server mounts every tal3a.v1 service on a mux.
type Server struct {
	Engine    *tal3a.Engine
	Verifier  auth.Verifier
	StoreName string
	Logger    *slog.Logger

	// Metrics and RateLimiter are optional.
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
}

// Register mounts the services on mux. Interceptors run outermost first:
// request id, logging, metrics, authentication, rate limit.
func (s *Server) Register(mux *http.ServeMux) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	required := s.handlerOptions(logger, middleware.RequireAuth(s.Verifier))
	optional := s.handlerOptions(logger, middleware.OptionalAuth(s.Verifier))

	mux.Handle(tal3av1connect.NewEventServiceHandler(NewEventService(s.Engine, logger), required...))
	mux.Handle(tal3av1connect.NewParticipantServiceHandler(NewParticipantService(s.Engine, logger), required...))
	mux.Handle(tal3av1connect.NewReviewServiceHandler(NewReviewService(s.Engine, logger), required...))
	mux.Handle(tal3av1connect.NewCommentServiceHandler(NewCommentService(s.Engine, logger), required...))
	mux.Handle(tal3av1connect.NewUtilityServiceHandler(NewUtilityService(s.Engine, s.StoreName, logger), optional...))
}

func (s *Server) handlerOptions(logger *slog.Logger, authInterceptor connect.Interceptor) []connect.HandlerOption {
	interceptors := []connect.Interceptor{
		middleware.RequestIDInterceptor(),
		middleware.LoggingInterceptor(logger),
	}
	if s.Metrics != nil {
		interceptors = append(interceptors, s.Metrics.Interceptor())
	}
	interceptors = append(interceptors, authInterceptor)
	if s.RateLimiter != nil {
		interceptors = append(interceptors, s.RateLimiter.Interceptor())
	}

	return []connect.HandlerOption{
		connect.WithInterceptors(interceptors...),
		connect.WithRecover(func(ctx context.Context, spec connect.Spec, _ http.Header, p any) error {
			logger.Error("handler panic", "procedure", spec.Procedure, "panic", fmt.Sprint(p))
			return connect.NewError(connect.CodeInternal, errors.New("an unexpected error occurred"))
		}),
	}
}
