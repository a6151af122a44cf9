package tal3a

import (
	"strings"
	"testing"
	"time"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/models"
)

func TestCapacityLifecycle(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 2)

	env.join(t, event.ID, alice, bob)

	got, err := env.engine.Events.Get(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Status != models.EventStatusFull {
		t.Errorf("Status: expected '%s', got '%s'", models.EventStatusFull, got.Status)
	}
	if got.CurrentParticipants != 2 {
		t.Errorf("CurrentParticipants: expected 2, got %d", got.CurrentParticipants)
	}

	_, err = env.engine.Participants.Join(env.ctx, carol, event.ID, "")
	expectCode(t, err, apperr.CodeEventFull)

	if err := env.engine.Participants.Leave(env.ctx, alice, event.ID); err != nil {
		t.Fatalf("Leave failed: %v", err)
	}
	got, _ = env.engine.Events.Get(env.ctx, event.ID)
	if got.Status != models.EventStatusActive {
		t.Errorf("Status after leave: expected '%s', got '%s'", models.EventStatusActive, got.Status)
	}
	if got.CurrentParticipants != 1 {
		t.Errorf("CurrentParticipants after leave: expected 1, got %d", got.CurrentParticipants)
	}

	env.join(t, event.ID, carol)

	roster, err := env.engine.Participants.List(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(roster.Members) != 2 || roster.Members[0].UserID != bob || roster.Members[1].UserID != carol {
		t.Errorf("expected roster [bob carol], got %+v", roster.Members)
	}
	if roster.CurrentParticipants != 2 || roster.MaxParticipants != 2 {
		t.Errorf("expected 2/2, got %d/%d", roster.CurrentParticipants, roster.MaxParticipants)
	}
}

func TestJoinRules(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)

	_, err := env.engine.Participants.Join(env.ctx, organizer, event.ID, "")
	expectCode(t, err, apperr.CodeCreatorCannotJoin)

	membership, err := env.engine.Participants.Join(env.ctx, alice, event.ID, "bringing a ball")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if membership.Status != models.ParticipantGoing {
		t.Errorf("Status: expected '%s', got '%s'", models.ParticipantGoing, membership.Status)
	}
	if membership.Notes != "bringing a ball" {
		t.Errorf("Notes: expected 'bringing a ball', got '%s'", membership.Notes)
	}

	_, err = env.engine.Participants.Join(env.ctx, alice, event.ID, "")
	expectCode(t, err, apperr.CodeAlreadyParticipant)

	_, err = env.engine.Participants.Join(env.ctx, bob, event.ID, strings.Repeat("n", 501))
	expectCode(t, err, apperr.CodeNotesTooLong)

	_, err = env.engine.Participants.Join(env.ctx, bob, 42, "")
	expectCode(t, err, apperr.CodeEventNotFound)

	_, err = env.engine.Participants.Join(env.ctx, "", event.ID, "")
	expectCode(t, err, apperr.CodeUnauthenticated)

	env.clock.Advance(72 * time.Hour)
	_, err = env.engine.Participants.Join(env.ctx, bob, event.ID, "")
	expectCode(t, err, apperr.CodeEventStarted)

	got, _ := env.engine.Events.Get(env.ctx, event.ID)
	if got.CurrentParticipants != 1 {
		t.Errorf("CurrentParticipants: expected 1 after rejected joins, got %d", got.CurrentParticipants)
	}
}

func TestJoinClosedEvent(t *testing.T) {
	env := setupTestEngine(t)

	cancelled := env.createEvent(t, 5)
	if _, err := env.engine.Events.UpdateStatus(env.ctx, organizer, cancelled.ID, models.EventStatusCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	_, err := env.engine.Participants.Join(env.ctx, alice, cancelled.ID, "")
	expectCode(t, err, apperr.CodeEventClosed)

	completed := env.createEvent(t, 5)
	env.complete(t, completed.ID)
	_, err = env.engine.Participants.Join(env.ctx, alice, completed.ID, "")
	expectCode(t, err, apperr.CodeEventClosed)

	closed := env.createEvent(t, 5)
	if _, err := env.engine.Events.UpdateStatus(env.ctx, organizer, closed.ID, models.EventStatusFull); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	_, err = env.engine.Participants.Join(env.ctx, alice, closed.ID, "")
	expectCode(t, err, apperr.CodeEventFull)
}

func TestLeaveRules(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice, bob)

	err := env.engine.Participants.Leave(env.ctx, carol, event.ID)
	expectCode(t, err, apperr.CodeParticipantNotFound)

	err = env.engine.Participants.Leave(env.ctx, alice, 42)
	expectCode(t, err, apperr.CodeEventNotFound)

	if err := env.engine.Participants.Leave(env.ctx, alice, event.ID); err != nil {
		t.Fatalf("Leave failed: %v", err)
	}
	err = env.engine.Participants.Leave(env.ctx, alice, event.ID)
	expectCode(t, err, apperr.CodeParticipantNotFound)

	history, err := env.engine.Participants.History(env.ctx, alice)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history after leaving, got %d", len(history))
	}

	env.clock.Advance(72 * time.Hour)
	err = env.engine.Participants.Leave(env.ctx, bob, event.ID)
	expectCode(t, err, apperr.CodeEventStarted)
}

func TestLeaveCompletedEvent(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice)
	env.complete(t, event.ID)

	err := env.engine.Participants.Leave(env.ctx, alice, event.ID)
	expectCode(t, err, apperr.CodeEventCompleted)
}

func TestUpdateParticipantStatus(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice)

	_, err := env.engine.Participants.UpdateStatus(env.ctx, alice, event.ID, alice, models.ParticipantMaybe)
	expectCode(t, err, apperr.CodeNotCreator)

	_, err = env.engine.Participants.UpdateStatus(env.ctx, organizer, event.ID, alice, "Late")
	expectCode(t, err, apperr.CodeParticipantStatus)

	_, err = env.engine.Participants.UpdateStatus(env.ctx, organizer, event.ID, bob, models.ParticipantMaybe)
	expectCode(t, err, apperr.CodeParticipantNotFound)

	membership, err := env.engine.Participants.UpdateStatus(env.ctx, organizer, event.ID, alice, models.ParticipantCantGo)
	if err != nil {
		t.Fatalf("UpdateParticipantStatus failed: %v", err)
	}
	if membership.Status != models.ParticipantCantGo {
		t.Errorf("Status: expected '%s', got '%s'", models.ParticipantCantGo, membership.Status)
	}

	roster, err := env.engine.Participants.List(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if roster.Members[0].Status != models.ParticipantCantGo {
		t.Errorf("stored Status: expected '%s', got '%s'", models.ParticipantCantGo, roster.Members[0].Status)
	}
}

func TestHistory(t *testing.T) {
	env := setupTestEngine(t)
	first := env.createEvent(t, 5)
	second := env.createEvent(t, 5)
	env.join(t, second.ID, alice)
	env.join(t, first.ID, alice)

	history, err := env.engine.Participants.History(env.ctx, alice)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 || history[0].ID != second.ID || history[1].ID != first.ID {
		t.Errorf("expected history in join order [%d %d], got %+v", second.ID, first.ID, history)
	}
}
