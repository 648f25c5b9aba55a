package models

// CreatePostRequest is the body for creating a trade post
type CreatePostRequest struct {
	HaveCards []string `json:"have_cards"`
	WantCards []string `json:"want_cards"`
	Note      string   `json:"note"`
}

// SetHiddenRequest toggles a post's visibility
type SetHiddenRequest struct {
	Hidden bool `json:"hidden"`
}

// SetStatusRequest is the moderation override for a post's lifecycle state
type SetStatusRequest struct {
	Status string `json:"status"`
}

// BulkDeleteRequest carries the post IDs for a moderation batch delete
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// SubmitRequestBody is the body for submitting a trade request against a post
type SubmitRequestBody struct {
	OfferedCardID   string `json:"offered_card_id"`
	RequestedCardID string `json:"requested_card_id"`
	Message         string `json:"message"`
}

// SendMessageRequest is the body for posting a chat message
type SendMessageRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// CancelNegotiationRequest optionally carries a reason for the cancel
type CancelNegotiationRequest struct {
	Reason string `json:"reason"`
}

// UpdateSettingsRequest is the admin body for tuning marketplace limits.
// Zero values leave the current setting untouched.
type UpdateSettingsRequest struct {
	MaxActivePostsPerDay int `json:"max_active_posts_per_day"`
	MaxCardsPerSide      int `json:"max_cards_per_side"`
	PostDurationHours    int `json:"post_duration_hours"`
	MaxRequestsPerDay    int `json:"max_requests_per_day"`
}
