package tal3av1

type Comment struct {
	ID              uint64  `json:"id"`
	EventID         uint64  `json:"event_id"`
	UserID          string  `json:"user_id"`
	Content         string  `json:"content"`
	ParentCommentID *uint64 `json:"parent_comment_id,omitempty"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

type CreateCommentRequest struct {
	EventID         uint64  `json:"event_id"`
	Content         string  `json:"content"`
	ParentCommentID *uint64 `json:"parent_comment_id,omitempty"`
}

type CreateCommentResponse struct {
	Comment *Comment `json:"comment"`
}

type UpdateCommentRequest struct {
	CommentID uint64 `json:"comment_id"`
	Content   string `json:"content"`
}

type UpdateCommentResponse struct {
	Comment *Comment `json:"comment"`
}

type DeleteCommentRequest struct {
	CommentID uint64 `json:"comment_id"`
}

type DeleteCommentResponse struct{}

type ListCommentsRequest struct {
	EventID uint64 `json:"event_id"`
}

type ListCommentsResponse struct {
	Comments []*Comment `json:"comments"`
}
