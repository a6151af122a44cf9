package tal3a

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/groups"
	"github.com/mmynk/tal3a/internal/ids"
	"github.com/mmynk/tal3a/internal/index"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
	"github.com/mmynk/tal3a/internal/validate"
)

// EventManager owns the event lifecycle: creation, edits, deletion and
// status changes, plus the attribute queries.
type EventManager struct {
	*base
	groups groups.Directory
}

// CreateEventInput carries the caller-supplied fields of a new event.
type CreateEventInput struct {
	GroupID         uint64
	Title           string
	Description     string
	ScheduledTime   time.Time
	Place           string
	MaxParticipants int
	CostPerPerson   *float64
	Sport           models.Sport
	Image           []byte
}

func (in *CreateEventInput) validate(now time.Time) error {
	checks := []error{
		validate.Title(in.Title),
		validate.Description(in.Description),
		validate.Place(in.Place),
		validate.Capacity(in.MaxParticipants),
		validate.Cost(in.CostPerPerson),
		validate.Schedule(in.ScheduledTime, now),
		validate.Sport(in.Sport),
		validate.Image(in.Image),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Create validates in, allocates an id, persists an Active event with no
// participants and registers it in every attribute index. Nothing is written
// when validation fails.
func (m *EventManager) Create(ctx context.Context, caller models.Principal, in CreateEventInput) (*models.Event, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	now := m.clock()
	if err := in.validate(now); err != nil {
		return nil, err
	}

	group, err := m.groups.Lookup(ctx, in.GroupID)
	if errors.Is(err, groups.ErrNotFound) {
		return nil, apperr.Newf(apperr.CodeGroupNotFound, "group %d not found", in.GroupID)
	}
	if err != nil {
		return nil, apperr.Internal("group lookup failed", err)
	}

	event := &models.Event{
		GroupID:         in.GroupID,
		CreatorID:       caller,
		Title:           in.Title,
		Description:     in.Description,
		ScheduledTime:   in.ScheduledTime.UTC(),
		Place:           in.Place,
		MaxParticipants: uint16(in.MaxParticipants),
		CostPerPerson:   in.CostPerPerson,
		Sport:           in.Sport,
		Status:          models.EventStatusActive,
		Image:           in.Image,
		CityID:          group.CityID,
		GovernorateID:   group.GovernorateID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = m.update(ctx, "create event", func(tx storage.Tx) error {
		id, err := ids.Next(tx, ids.KindEvent)
		if err != nil {
			return err
		}
		event.ID = id
		if err := saveEvent(tx, event); err != nil {
			return err
		}
		return index.RegisterEvent(tx, event)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("event created", "event_id", event.ID, "creator", event.CreatorID, "sport", event.Sport)
	return event, nil
}

// EventUpdate lists the fields to change. Nil fields are left as they are.
type EventUpdate struct {
	Title           *string
	Description     *string
	ScheduledTime   *time.Time
	Place           *string
	MaxParticipants *int
	CostPerPerson   *float64
	Sport           *models.Sport
	Image           []byte

	// ClearCost makes the event free and ClearImage drops its image. A new
	// value in the same update takes precedence over the clear flag.
	ClearCost  bool
	ClearImage bool
}

func (u *EventUpdate) validate(event *models.Event, now time.Time) error {
	var checks []error
	if u.Title != nil {
		checks = append(checks, validate.Title(*u.Title))
	}
	if u.Description != nil {
		checks = append(checks, validate.Description(*u.Description))
	}
	if u.ScheduledTime != nil {
		checks = append(checks, validate.Schedule(*u.ScheduledTime, now))
	}
	if u.Place != nil {
		checks = append(checks, validate.Place(*u.Place))
	}
	if u.MaxParticipants != nil {
		checks = append(checks, validate.CapacityForCount(*u.MaxParticipants, event.CurrentParticipants))
	}
	if u.CostPerPerson != nil {
		checks = append(checks, validate.Cost(u.CostPerPerson))
	}
	if u.Sport != nil {
		checks = append(checks, validate.Sport(*u.Sport))
	}
	if u.Image != nil {
		checks = append(checks, validate.Image(u.Image))
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func (u *EventUpdate) apply(event *models.Event) {
	if u.Title != nil {
		event.Title = *u.Title
	}
	if u.Description != nil {
		event.Description = *u.Description
	}
	if u.ScheduledTime != nil {
		event.ScheduledTime = u.ScheduledTime.UTC()
	}
	if u.Place != nil {
		event.Place = *u.Place
	}
	if u.MaxParticipants != nil {
		event.Resize(uint16(*u.MaxParticipants))
	}
	switch {
	case u.CostPerPerson != nil:
		event.CostPerPerson = u.CostPerPerson
	case u.ClearCost:
		event.CostPerPerson = nil
	}
	if u.Sport != nil {
		event.Sport = *u.Sport
	}
	switch {
	case u.Image != nil:
		event.Image = u.Image
	case u.ClearImage:
		event.Image = nil
	}
}

// Update applies changes to an event the caller organizes. Completed events
// are frozen.
func (m *EventManager) Update(ctx context.Context, caller models.Principal, eventID uint64, changes EventUpdate) (*models.Event, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	now := m.clock()

	var event *models.Event
	err := m.update(ctx, "update event", func(tx storage.Tx) error {
		var err error
		event, err = loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsCreator(caller) {
			return apperr.New(apperr.CodeNotCreator, "only the event creator can update the event")
		}
		if event.Status == models.EventStatusCompleted {
			return apperr.New(apperr.CodeEventCompleted, "completed events cannot be updated")
		}
		if err := changes.validate(event, now); err != nil {
			return err
		}

		previousSport := event.Sport
		changes.apply(event)
		event.UpdatedAt = now

		if err := index.MoveSport(tx, event.ID, previousSport, event.Sport); err != nil {
			return err
		}
		return saveEvent(tx, event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event that has not started yet, together with its
// memberships and every index entry that points at it.
func (m *EventManager) Delete(ctx context.Context, caller models.Principal, eventID uint64) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	now := m.clock()

	err := m.update(ctx, "delete event", func(tx storage.Tx) error {
		event, err := loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsCreator(caller) {
			return apperr.New(apperr.CodeNotCreator, "only the event creator can delete the event")
		}
		if event.HasStarted(now) {
			return apperr.New(apperr.CodeEventStarted, "cannot delete an event that has already started")
		}

		members, err := index.Members(tx, eventID)
		if err != nil {
			return err
		}
		for _, member := range members {
			if err := tx.Delete(storage.MemberKey(eventID, string(member))); err != nil {
				return err
			}
			if err := index.Remove(tx, index.ByParticipant(member), eventID); err != nil {
				return err
			}
			if err := index.RemoveMember(tx, eventID, member); err != nil {
				return err
			}
		}
		if err := index.UnregisterEvent(tx, event); err != nil {
			return err
		}
		return tx.Delete(storage.EventKey(eventID))
	})
	if err != nil {
		return err
	}

	m.logger.Info("event deleted", "event_id", eventID, "creator", caller)
	return nil
}

// Get returns one event.
func (m *EventManager) Get(ctx context.Context, eventID uint64) (*models.Event, error) {
	var event *models.Event
	err := m.view(ctx, "get event", func(tx storage.Tx) error {
		var err error
		event, err = loadEvent(tx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Status returns the lifecycle status of an event.
func (m *EventManager) Status(ctx context.Context, eventID uint64) (models.EventStatus, error) {
	event, err := m.Get(ctx, eventID)
	if err != nil {
		return "", err
	}
	return event.Status, nil
}

// UpdateStatus moves an event along the transition table on the organizer's
// request.
func (m *EventManager) UpdateStatus(ctx context.Context, caller models.Principal, eventID uint64, to models.EventStatus) (*models.Event, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	now := m.clock()

	var event *models.Event
	var from models.EventStatus
	err := m.update(ctx, "update event status", func(tx storage.Tx) error {
		var err error
		event, err = loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsCreator(caller) {
			return apperr.New(apperr.CodeNotCreator, "only the event creator can change the status")
		}
		if err := validate.Transition(event.Status, to); err != nil {
			return err
		}
		from = event.Status
		event.Status = to
		event.UpdatedAt = now
		return saveEvent(tx, event)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("event status changed", "event_id", eventID, "from", from, "to", to)
	return event, nil
}

// ListByOrganizer returns the events organized by p in creation order.
func (m *EventManager) ListByOrganizer(ctx context.Context, p models.Principal) ([]models.Event, error) {
	var events []models.Event
	err := m.view(ctx, "list organized events", func(tx storage.Tx) error {
		var err error
		events, err = listEvents(tx, index.ByOrganizer(p))
		return err
	})
	return events, err
}

// Filter narrows an event listing. Zero values do not filter.
type Filter struct {
	Organizer     models.Principal
	GroupID       uint64
	Sport         models.Sport
	CityID        uint32
	GovernorateID uint32
	Status        models.EventStatus
	From          time.Time
	To            time.Time
	MaxCost       *float64
}

// candidates picks the narrowest index the filter pins down.
func (f *Filter) candidates() index.Key {
	switch {
	case f.Organizer != "":
		return index.ByOrganizer(f.Organizer)
	case f.GroupID != 0:
		return index.ByGroup(f.GroupID)
	case f.CityID != 0:
		return index.ByCity(uint16(f.CityID))
	case f.GovernorateID != 0:
		return index.ByGovernorate(uint8(f.GovernorateID))
	case f.Sport != "":
		return index.BySport(f.Sport)
	default:
		return index.AllEvents()
	}
}

func (f *Filter) match(e *models.Event) bool {
	switch {
	case f.Organizer != "" && e.CreatorID != f.Organizer:
		return false
	case f.GroupID != 0 && e.GroupID != f.GroupID:
		return false
	case f.CityID != 0 && uint32(e.CityID) != f.CityID:
		return false
	case f.GovernorateID != 0 && uint32(e.GovernorateID) != f.GovernorateID:
		return false
	case f.Sport != "" && e.Sport != f.Sport:
		return false
	case f.Status != "" && e.Status != f.Status:
		return false
	case !f.From.IsZero() && e.ScheduledTime.Before(f.From):
		return false
	case !f.To.IsZero() && e.ScheduledTime.After(f.To):
		return false
	case f.MaxCost != nil && e.CostPerPerson != nil && *e.CostPerPerson > *f.MaxCost:
		return false
	}
	return true
}

// List returns one page of the events matching f, in creation order.
func (m *EventManager) List(ctx context.Context, f Filter, page, pageSize int) (Page[models.Event], error) {
	if f.Sport != "" {
		if err := validate.Sport(f.Sport); err != nil {
			return Page[models.Event]{}, err
		}
	}
	if f.Status != "" && !f.Status.Valid() {
		return Page[models.Event]{}, apperr.Newf(apperr.CodeStatusInvalid, "unknown status %q", f.Status)
	}
	if f.CityID > math.MaxUint16 {
		return Page[models.Event]{}, apperr.Newf(apperr.CodeLocationInvalid, "city id %d out of range", f.CityID)
	}
	if f.GovernorateID > math.MaxUint8 {
		return Page[models.Event]{}, apperr.Newf(apperr.CodeLocationInvalid, "governorate id %d out of range", f.GovernorateID)
	}

	var matched []models.Event
	err := m.view(ctx, "list events", func(tx storage.Tx) error {
		events, err := listEvents(tx, f.candidates())
		if err != nil {
			return err
		}
		for i := range events {
			if f.match(&events[i]) {
				matched = append(matched, events[i])
			}
		}
		return nil
	})
	if err != nil {
		return Page[models.Event]{}, err
	}
	return Paginate(matched, page, pageSize), nil
}

// compactable names the indexes of event ids that CompactIndex accepts.
var compactable = map[string]bool{
	index.AllEvents().Name:       true,
	index.ByOrganizer("").Name:   true,
	index.ByParticipant("").Name: true,
	index.ByGroup(0).Name:        true,
	index.BySport("").Name:       true,
	index.ByCity(0).Name:         true,
	index.ByGovernorate(0).Name:  true,
}

// CompactIndex drops ids of deleted events from one index list and reports
// how many were dropped.
func (m *EventManager) CompactIndex(ctx context.Context, key index.Key) (int, error) {
	if !compactable[key.Name] {
		return 0, apperr.Newf(apperr.CodeIndexInvalid, "index %q does not list events", key.Name)
	}
	var dropped int
	err := m.update(ctx, "compact index", func(tx storage.Tx) error {
		var err error
		dropped, err = index.CompactEvents(tx, key)
		return err
	})
	if err != nil {
		return 0, err
	}
	if dropped > 0 {
		m.logger.Info("index compacted", "index", fmt.Sprintf("%s/%s", key.Name, key.Value), "dropped", dropped)
	}
	return dropped, nil
}
