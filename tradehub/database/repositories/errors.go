package repositories

import "errors"

// Sentinel errors surfaced by repository operations whose outcome depends on
// entity state. The trading layer maps these onto its error taxonomy; races
// between callers and the sweeper show up as these, never as raw SQL errors.
var (
	ErrNotFound             = errors.New("entity not found")
	ErrPostNotActive        = errors.New("trade post is not active")
	ErrPostExpired          = errors.New("trade post has expired")
	ErrRequestNotPending    = errors.New("trade request is not pending")
	ErrNegotiationNotActive = errors.New("negotiation is not active")
	ErrNotParticipant       = errors.New("trader is not a participant")
)
