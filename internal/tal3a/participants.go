package tal3a

import (
	"context"
	"errors"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/index"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
	"github.com/mmynk/tal3a/internal/validate"
)

// ParticipantManager enrolls principals in events and keeps the participant
// count, the Active/Full status and the membership indexes in step.
type ParticipantManager struct {
	*base
}

func loadMembership(tx storage.Tx, eventID uint64, user models.Principal) (*models.Membership, error) {
	var membership models.Membership
	err := storage.GetJSON(tx, storage.MemberKey(eventID, string(user)), &membership)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.Newf(apperr.CodeParticipantNotFound, "%s is not a participant of event %d", user, eventID)
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func isMember(tx storage.Tx, eventID uint64, user models.Principal) (bool, error) {
	return storage.Exists(tx, storage.MemberKey(eventID, string(user)))
}

// Join enrolls the caller with status Going. The event flips to Full when
// the last seat is taken.
func (m *ParticipantManager) Join(ctx context.Context, caller models.Principal, eventID uint64, notes string) (*models.Membership, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validate.Notes(notes); err != nil {
		return nil, err
	}
	now := m.clock()

	var membership *models.Membership
	var status models.EventStatus
	err := m.update(ctx, "join event", func(tx storage.Tx) error {
		event, err := loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if event.Status.Terminal() {
			return apperr.Newf(apperr.CodeEventClosed, "event is %s", event.Status)
		}
		if event.IsCreator(caller) {
			return apperr.New(apperr.CodeCreatorCannotJoin, "the organizer cannot join their own event")
		}
		member, err := isMember(tx, eventID, caller)
		if err != nil {
			return err
		}
		if member {
			return apperr.New(apperr.CodeAlreadyParticipant, "already a participant of this event")
		}
		if event.IsFull() || event.Status == models.EventStatusFull {
			return apperr.New(apperr.CodeEventFull, "event is full")
		}
		if event.HasStarted(now) {
			return apperr.New(apperr.CodeEventStarted, "cannot join an event that has already started")
		}

		membership = &models.Membership{
			EventID:  eventID,
			UserID:   caller,
			Status:   models.ParticipantGoing,
			Notes:    notes,
			JoinedAt: now,
		}
		if err := storage.PutJSON(tx, storage.MemberKey(eventID, string(caller)), membership); err != nil {
			return err
		}
		if err := index.AppendMember(tx, eventID, caller); err != nil {
			return err
		}
		if err := index.Append(tx, index.ByParticipant(caller), eventID); err != nil {
			return err
		}

		event.CurrentParticipants++
		event.SyncCapacityStatus()
		event.UpdatedAt = now
		status = event.Status
		return saveEvent(tx, event)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Debug("participant joined", "event_id", eventID, "user", caller, "event_status", status)
	return membership, nil
}

// Leave withdraws the caller from an event that has not started. A Full
// event reopens to Active.
func (m *ParticipantManager) Leave(ctx context.Context, caller models.Principal, eventID uint64) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	now := m.clock()

	err := m.update(ctx, "leave event", func(tx storage.Tx) error {
		event, err := loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if _, err := loadMembership(tx, eventID, caller); err != nil {
			return err
		}
		if event.Status == models.EventStatusCompleted {
			return apperr.New(apperr.CodeEventCompleted, "cannot leave a completed event")
		}
		if event.HasStarted(now) {
			return apperr.New(apperr.CodeEventStarted, "cannot leave an event that has already started")
		}

		if err := tx.Delete(storage.MemberKey(eventID, string(caller))); err != nil {
			return err
		}
		if err := index.RemoveMember(tx, eventID, caller); err != nil {
			return err
		}
		if err := index.Remove(tx, index.ByParticipant(caller), eventID); err != nil {
			return err
		}

		if event.CurrentParticipants > 0 {
			event.CurrentParticipants--
		}
		event.SyncCapacityStatus()
		event.UpdatedAt = now
		return saveEvent(tx, event)
	})
	if err != nil {
		return err
	}

	m.logger.Debug("participant left", "event_id", eventID, "user", caller)
	return nil
}

// UpdateStatus lets the organizer record a participant's attendance intent.
func (m *ParticipantManager) UpdateStatus(ctx context.Context, caller models.Principal, eventID uint64, participant models.Principal, status models.ParticipantStatus) (*models.Membership, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validate.ParticipantStatus(status); err != nil {
		return nil, err
	}

	var membership *models.Membership
	err := m.update(ctx, "update participant status", func(tx storage.Tx) error {
		event, err := loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsCreator(caller) {
			return apperr.New(apperr.CodeNotCreator, "only the event creator can update participant status")
		}
		membership, err = loadMembership(tx, eventID, participant)
		if err != nil {
			return err
		}
		membership.Status = status
		return storage.PutJSON(tx, storage.MemberKey(eventID, string(participant)), membership)
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

// Roster is the participant list of an event.
type Roster struct {
	Members             []models.Membership
	CurrentParticipants uint16
	MaxParticipants     uint16
}

// List returns the memberships of an event in join order.
func (m *ParticipantManager) List(ctx context.Context, eventID uint64) (*Roster, error) {
	var roster *Roster
	err := m.view(ctx, "list participants", func(tx storage.Tx) error {
		event, err := loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		users, err := index.Members(tx, eventID)
		if err != nil {
			return err
		}
		roster = &Roster{
			Members:             make([]models.Membership, 0, len(users)),
			CurrentParticipants: event.CurrentParticipants,
			MaxParticipants:     event.MaxParticipants,
		}
		for _, user := range users {
			membership, err := loadMembership(tx, eventID, user)
			if apperr.IsCode(err, apperr.CodeParticipantNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			roster.Members = append(roster.Members, *membership)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

// History returns the events user currently participates in, in join order.
func (m *ParticipantManager) History(ctx context.Context, user models.Principal) ([]models.Event, error) {
	var events []models.Event
	err := m.view(ctx, "list participant history", func(tx storage.Tx) error {
		var err error
		events, err = listEvents(tx, index.ByParticipant(user))
		return err
	})
	return events, err
}
