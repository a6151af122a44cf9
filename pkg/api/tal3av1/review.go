package tal3av1

type Review struct {
	ID                 uint64 `json:"id"`
	EventID            uint64 `json:"event_id"`
	ReviewerID         string `json:"reviewer_id"`
	Rating             uint32 `json:"rating"`
	Comment            string `json:"comment,omitempty"`
	OrganizationRating uint32 `json:"organization_rating"`
	VenueRating        uint32 `json:"venue_rating"`
	ValueRating        uint32 `json:"value_rating"`
	Verified           bool   `json:"verified"`
	HelpfulCount       uint64 `json:"helpful_count"`
	ReportedCount      uint64 `json:"reported_count"`
	CreatedAt          int64  `json:"created_at"`
	UpdatedAt          int64  `json:"updated_at"`
}

type CreateReviewRequest struct {
	EventID            uint64 `json:"event_id"`
	Rating             int32  `json:"rating"`
	Comment            string `json:"comment,omitempty"`
	OrganizationRating *int32 `json:"organization_rating,omitempty"`
	VenueRating        *int32 `json:"venue_rating,omitempty"`
	ValueRating        *int32 `json:"value_rating,omitempty"`
}

type CreateReviewResponse struct {
	Review *Review `json:"review"`
}

type UpdateReviewRequest struct {
	ReviewID           uint64  `json:"review_id"`
	Rating             *int32  `json:"rating,omitempty"`
	Comment            *string `json:"comment,omitempty"`
	OrganizationRating *int32  `json:"organization_rating,omitempty"`
	VenueRating        *int32  `json:"venue_rating,omitempty"`
	ValueRating        *int32  `json:"value_rating,omitempty"`
}

type UpdateReviewResponse struct {
	Review *Review `json:"review"`
}

type DeleteReviewRequest struct {
	ReviewID uint64 `json:"review_id"`
}

type DeleteReviewResponse struct{}

type GetReviewRequest struct {
	ReviewID uint64 `json:"review_id"`
}

type GetReviewResponse struct {
	Review *Review `json:"review"`
}

type ListEventReviewsRequest struct {
	EventID uint64 `json:"event_id"`
}

type ListEventReviewsResponse struct {
	Reviews []*Review `json:"reviews"`
}

// ListUserReviewsRequest defaults to the caller when UserID is empty.
type ListUserReviewsRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type ListUserReviewsResponse struct {
	Reviews []*Review `json:"reviews"`
}

type MarkHelpfulRequest struct {
	ReviewID uint64 `json:"review_id"`
}

type MarkHelpfulResponse struct {
	Review *Review `json:"review"`
}

type ReportReviewRequest struct {
	ReviewID uint64 `json:"review_id"`
}

type ReportReviewResponse struct {
	Review *Review `json:"review"`
}

type GetAverageRatingRequest struct {
	EventID uint64 `json:"event_id"`
}

type GetAverageRatingResponse struct {
	Average     string `json:"average"`
	ReviewCount int32  `json:"review_count"`
}
