package models

import "time"

// Principal is an opaque caller identity supplied by the identity collaborator.
type Principal string

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "Active"
	EventStatusFull      EventStatus = "Full"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusCancelled EventStatus = "Cancelled"
)

// Valid reports whether s is a known status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusActive, EventStatusFull, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s EventStatus) Terminal() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

// Open reports whether the event still accepts roster changes.
func (s EventStatus) Open() bool {
	return s == EventStatusActive || s == EventStatusFull
}

// Event represents a scheduled sports meetup (a Tal3a).
type Event struct {
	// ID is assigned by the ID allocator and never changes.
	ID uint64 `json:"id"`

	// GroupID is the social group the event belongs to.
	GroupID uint64 `json:"group_id"`

	// CreatorID is the organizer. Only the organizer may edit, delete,
	// change the status, or manage participant statuses.
	CreatorID Principal `json:"creator_id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// ScheduledTime is when the meetup starts. Joining, leaving and deleting
	// are refused once it has passed.
	ScheduledTime time.Time `json:"scheduled_time"`

	// Place is a free-form venue or meeting point.
	Place string `json:"place"`

	// MaxParticipants is the capacity, between 1 and 1000.
	MaxParticipants uint16 `json:"max_participants"`

	// CurrentParticipants counts memberships. It never exceeds MaxParticipants.
	CurrentParticipants uint16 `json:"current_participants"`

	// CostPerPerson is optional; nil means free.
	CostPerPerson *float64 `json:"cost_per_person,omitempty"`

	Sport  Sport       `json:"sport"`
	Status EventStatus `json:"status"`

	// Image is an optional cover picture.
	Image []byte `json:"image,omitempty"`

	// CityID and GovernorateID are copied from the group at creation time so
	// the location indexes can be maintained without another group lookup.
	CityID        uint16 `json:"city_id"`
	GovernorateID uint8  `json:"governorate_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCreator reports whether p organized the event.
func (e *Event) IsCreator(p Principal) bool {
	return e.CreatorID == p
}

// HasStarted reports whether the scheduled time is at or before now.
func (e *Event) HasStarted(now time.Time) bool {
	return !e.ScheduledTime.After(now)
}

// IsFull reports whether every seat is taken.
func (e *Event) IsFull() bool {
	return e.CurrentParticipants >= e.MaxParticipants
}

// Resize sets a new capacity. Reaching the cap marks an open event Full and
// growing past it reopens an event that was Full by count. A Full status the
// organizer set below capacity is kept.
func (e *Event) Resize(maxParticipants uint16) {
	wasAtCapacity := e.IsFull()
	e.MaxParticipants = maxParticipants
	if !e.Status.Open() {
		return
	}
	switch {
	case e.IsFull():
		e.Status = EventStatusFull
	case wasAtCapacity:
		e.Status = EventStatusActive
	}
}

// SyncCapacityStatus flips Active and Full to match the participant count.
// Terminal statuses are left alone.
func (e *Event) SyncCapacityStatus() {
	if !e.Status.Open() {
		return
	}
	if e.IsFull() {
		e.Status = EventStatusFull
	} else {
		e.Status = EventStatusActive
	}
}
