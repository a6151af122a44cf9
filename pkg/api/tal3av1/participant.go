package tal3av1

type Participant struct {
	EventID  uint64 `json:"event_id"`
	UserID   string `json:"user_id"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
	JoinedAt int64  `json:"joined_at"`
}

type JoinEventRequest struct {
	EventID uint64 `json:"event_id"`
	Notes   string `json:"notes,omitempty"`
}

type JoinEventResponse struct {
	Participant *Participant `json:"participant"`
}

type LeaveEventRequest struct {
	EventID uint64 `json:"event_id"`
}

type LeaveEventResponse struct{}

type ListParticipantsRequest struct {
	EventID uint64 `json:"event_id"`
}

type ListParticipantsResponse struct {
	Participants        []*Participant `json:"participants"`
	CurrentParticipants uint32         `json:"current_participants"`
	MaxParticipants     uint32         `json:"max_participants"`
}

type UpdateParticipantStatusRequest struct {
	EventID       uint64 `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Status        string `json:"status"`
}

type UpdateParticipantStatusResponse struct {
	Participant *Participant `json:"participant"`
}

// ListHistoryRequest defaults to the caller when UserID is empty.
type ListHistoryRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type ListHistoryResponse struct {
	Events []*Event `json:"events"`
}
