package models

import "time"

// ParticipantStatus is the attendance intent of a member.
type ParticipantStatus string

const (
	ParticipantGoing  ParticipantStatus = "Going"
	ParticipantMaybe  ParticipantStatus = "Maybe"
	ParticipantCantGo ParticipantStatus = "CantGo"
)

// Valid reports whether s is a known participant status.
func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantGoing, ParticipantMaybe, ParticipantCantGo:
		return true
	}
	return false
}

// Membership is a principal's enrollment in an event.
// There is at most one membership per (EventID, UserID).
type Membership struct {
	EventID  uint64            `json:"event_id"`
	UserID   Principal         `json:"user_id"`
	Status   ParticipantStatus `json:"status"`
	Notes    string            `json:"notes,omitempty"`
	JoinedAt time.Time         `json:"joined_at"`
}
