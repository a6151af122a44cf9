package models

import "time"

// Comment is a message on an event's discussion thread.
type Comment struct {
	ID      uint64    `json:"id"`
	EventID uint64    `json:"event_id"`
	UserID  Principal `json:"user_id"`
	Content string    `json:"content"`

	// ParentCommentID threads a reply under another comment of the same event.
	ParentCommentID *uint64 `json:"parent_comment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
