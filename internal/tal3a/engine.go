// Package tal3a implements the event lifecycle and participation engine:
// creating and scheduling events, enrolling participants, and collecting
// post-event reviews and comments.
//
// Every mutating operation validates its input, then reads, modifies and
// writes the affected records and their secondary index entries inside a
// single storage.Store Update. The store serializes updates, so each
// operation observes every previously completed one and a failure leaves no
// partial state behind.
package tal3a

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/groups"
	"github.com/mmynk/tal3a/internal/index"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
)

// Engine bundles the managers that share one store.
type Engine struct {
	Events       *EventManager
	Participants *ParticipantManager
	Reviews      *ReviewManager
	Comments     *CommentManager
}

// Option configures an Engine.
type Option func(*base)

// WithClock overrides the time source. Tests use it to move past an event's
// scheduled time.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithLogger overrides the logger (slog.Default by default).
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) { b.logger = logger }
}

// NewEngine creates the managers over store. Group locations are resolved
// through directory when events are created.
func NewEngine(store storage.Store, directory groups.Directory, opts ...Option) *Engine {
	b := &base{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return &Engine{
		Events:       &EventManager{base: b, groups: directory},
		Participants: &ParticipantManager{base: b},
		Reviews:      &ReviewManager{base: b},
		Comments:     &CommentManager{base: b},
	}
}

// base is the state every manager shares.
type base struct {
	store  storage.Store
	now    func() time.Time
	logger *slog.Logger
}

// clock returns the current time truncated to what the JSON encoding keeps.
func (b *base) clock() time.Time {
	return b.now().UTC().Round(0)
}

// update runs fn as one unit of work. Domain errors pass through untouched;
// anything else is reported as an internal failure of op.
func (b *base) update(ctx context.Context, op string, fn func(tx storage.Tx) error) error {
	return b.wrap(op, b.store.Update(ctx, fn))
}

// view is update's read-only twin.
func (b *base) view(ctx context.Context, op string, fn func(tx storage.Tx) error) error {
	return b.wrap(op, b.store.View(ctx, fn))
}

func (b *base) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	b.logger.Error("storage failure", "op", op, "error", err)
	return apperr.Internal(op+" failed", err)
}

func requireCaller(caller models.Principal) error {
	if caller == "" {
		return apperr.New(apperr.CodeUnauthenticated, "caller identity is required")
	}
	return nil
}

// loadEvent reads an event record, mapping a missing key to EVENT_NOT_FOUND.
func loadEvent(tx storage.Tx, id uint64) (*models.Event, error) {
	var event models.Event
	err := storage.GetJSON(tx, storage.EventKey(id), &event)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.Newf(apperr.CodeEventNotFound, "event %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func saveEvent(tx storage.Tx, event *models.Event) error {
	return storage.PutJSON(tx, storage.EventKey(event.ID), event)
}

// loadEvents resolves index ids to events, skipping ids whose record is gone.
func loadEvents(tx storage.Tx, ids []uint64) ([]models.Event, error) {
	events := make([]models.Event, 0, len(ids))
	for _, id := range ids {
		event, err := loadEvent(tx, id)
		if apperr.IsCode(err, apperr.CodeEventNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

// listEvents loads the events listed under an index key.
func listEvents(tx storage.Tx, key index.Key) ([]models.Event, error) {
	ids, err := index.List(tx, key)
	if err != nil {
		return nil, err
	}
	return loadEvents(tx, ids)
}
