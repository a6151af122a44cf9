package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/index"
	"github.com/mmynk/tal3a/internal/middleware"
	"github.com/mmynk/tal3a/internal/tal3a"
	pb "github.com/mmynk/tal3a/pkg/api/tal3av1"
	"github.com/mmynk/tal3a/pkg/api/tal3av1/tal3av1connect"
)

// UtilityService implements the Connect UtilityService. It is mounted with
// optional authentication so Health and Now answer anonymous probes.
type UtilityService struct {
	events    *tal3a.EventManager
	storeName string
	now       func() time.Time
	logger    *slog.Logger
}

var _ tal3av1connect.UtilityServiceHandler = (*UtilityService)(nil)

// NewUtilityService creates a new UtilityService. storeName is reported by Health.
func NewUtilityService(engine *tal3a.Engine, storeName string, logger *slog.Logger) *UtilityService {
	return &UtilityService{
		events:    engine.Events,
		storeName: storeName,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *UtilityService) Health(ctx context.Context, req *connect.Request[pb.HealthRequest]) (*connect.Response[pb.HealthResponse], error) {
	return connect.NewResponse(&pb.HealthResponse{Status: "ok", Store: s.storeName}), nil
}

func (s *UtilityService) Now(ctx context.Context, req *connect.Request[pb.NowRequest]) (*connect.Response[pb.NowResponse], error) {
	return connect.NewResponse(&pb.NowResponse{UnixNanos: s.now().UnixNano()}), nil
}

// WhoAmI echoes the authenticated principal.
func (s *UtilityService) WhoAmI(ctx context.Context, req *connect.Request[pb.WhoAmIRequest]) (*connect.Response[pb.WhoAmIResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	if caller == "" {
		return nil, apperr.ToConnect(apperr.New(apperr.CodeUnauthenticated, "authorization token required"))
	}
	return connect.NewResponse(&pb.WhoAmIResponse{Principal: string(caller)}), nil
}

// CompactIndex drops stale ids from one event index.
func (s *UtilityService) CompactIndex(ctx context.Context, req *connect.Request[pb.CompactIndexRequest]) (*connect.Response[pb.CompactIndexResponse], error) {
	caller := middleware.GetPrincipal(ctx)
	if caller == "" {
		return nil, apperr.ToConnect(apperr.New(apperr.CodeUnauthenticated, "authorization token required"))
	}
	s.logger.Info("CompactIndex request received", "principal", caller, "index", req.Msg.Index, "value", req.Msg.Value)

	dropped, err := s.events.CompactIndex(ctx, index.Key{Name: req.Msg.Index, Value: req.Msg.Value})
	if err != nil {
		return nil, fail(s.logger, "CompactIndex", err, "index", req.Msg.Index)
	}

	return connect.NewResponse(&pb.CompactIndexResponse{Dropped: int32(dropped)}), nil
}
