package tal3av1

// Timestamps on the wire are nanoseconds since the Unix epoch.

type Event struct {
	ID                  uint64   `json:"id"`
	GroupID             uint64   `json:"group_id"`
	CreatorID           string   `json:"creator_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	ScheduledTime       int64    `json:"scheduled_time"`
	Place               string   `json:"place"`
	MaxParticipants     uint32   `json:"max_participants"`
	CurrentParticipants uint32   `json:"current_participants"`
	CostPerPerson       *float64 `json:"cost_per_person,omitempty"`
	Sport               string   `json:"sport"`
	Status              string   `json:"status"`
	Image               []byte   `json:"image,omitempty"`
	CityID              uint32   `json:"city_id"`
	GovernorateID       uint32   `json:"governorate_id"`
	CreatedAt           int64    `json:"created_at"`
	UpdatedAt           int64    `json:"updated_at"`
}

type CreateEventRequest struct {
	GroupID         uint64   `json:"group_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ScheduledTime   int64    `json:"scheduled_time"`
	Place           string   `json:"place"`
	MaxParticipants int32    `json:"max_participants"`
	CostPerPerson   *float64 `json:"cost_per_person,omitempty"`
	Sport           string   `json:"sport"`
	Image           []byte   `json:"image,omitempty"`
}

type CreateEventResponse struct {
	Event *Event `json:"event"`
}

// UpdateEventRequest changes only the fields that are set.
type UpdateEventRequest struct {
	EventID         uint64   `json:"event_id"`
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ScheduledTime   *int64   `json:"scheduled_time,omitempty"`
	Place           *string  `json:"place,omitempty"`
	MaxParticipants *int32   `json:"max_participants,omitempty"`
	CostPerPerson   *float64 `json:"cost_per_person,omitempty"`
	Sport           *string  `json:"sport,omitempty"`
	Image           []byte   `json:"image,omitempty"`
	ClearCost       bool     `json:"clear_cost,omitempty"`
	ClearImage      bool     `json:"clear_image,omitempty"`
}

type UpdateEventResponse struct {
	Event *Event `json:"event"`
}

type DeleteEventRequest struct {
	EventID uint64 `json:"event_id"`
}

type DeleteEventResponse struct{}

type GetEventRequest struct {
	EventID uint64 `json:"event_id"`
}

type GetEventResponse struct {
	Event *Event `json:"event"`
}

// ListEventsRequest filters on every non-zero field.
type ListEventsRequest struct {
	Sport         string   `json:"sport,omitempty"`
	CityID        uint32   `json:"city_id,omitempty"`
	GovernorateID uint32   `json:"governorate_id,omitempty"`
	GroupID       uint64   `json:"group_id,omitempty"`
	OrganizerID   string   `json:"organizer_id,omitempty"`
	Status        string   `json:"status,omitempty"`
	From          int64    `json:"from,omitempty"`
	To            int64    `json:"to,omitempty"`
	MaxCost       *float64 `json:"max_cost,omitempty"`
	Page          int32    `json:"page,omitempty"`
	PageSize      int32    `json:"page_size,omitempty"`
}

type ListEventsResponse struct {
	Events   []*Event `json:"events"`
	Page     int32    `json:"page"`
	PageSize int32    `json:"page_size"`
	Total    int32    `json:"total"`
	HasNext  bool     `json:"has_next"`
}

type GetEventStatusRequest struct {
	EventID uint64 `json:"event_id"`
}

type GetEventStatusResponse struct {
	Status string `json:"status"`
}

type UpdateEventStatusRequest struct {
	EventID uint64 `json:"event_id"`
	Status  string `json:"status"`
}

type UpdateEventStatusResponse struct {
	Event *Event `json:"event"`
}

// ListOrganizedEventsRequest defaults to the caller when OrganizerID is empty.
type ListOrganizedEventsRequest struct {
	OrganizerID string `json:"organizer_id,omitempty"`
}

type ListOrganizedEventsResponse struct {
	Events []*Event `json:"events"`
}
