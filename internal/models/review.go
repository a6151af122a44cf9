package models

import "time"

// Review is post-event feedback on a completed event.
type Review struct {
	ID         uint64    `json:"id"`
	EventID    uint64    `json:"event_id"`
	ReviewerID Principal `json:"reviewer_id"`

	// Rating is the overall score, 1 to 5.
	Rating uint8 `json:"rating"`

	Comment string `json:"comment,omitempty"`

	// Sub-ratings default to Rating when the reviewer leaves them out.
	OrganizationRating uint8 `json:"organization_rating"`
	VenueRating        uint8 `json:"venue_rating"`
	ValueRating        uint8 `json:"value_rating"`

	// Verified is set when the reviewer held a membership in the event,
	// as opposed to the organizer reviewing their own event.
	Verified bool `json:"verified"`

	HelpfulCount  uint64 `json:"helpful_count"`
	ReportedCount uint64 `json:"reported_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
