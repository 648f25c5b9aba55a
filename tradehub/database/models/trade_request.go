package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TradeRequestStatus string

const (
	TradeRequestPending  TradeRequestStatus = "pending"
	TradeRequestAccepted TradeRequestStatus = "accepted"
	TradeRequestDeclined TradeRequestStatus = "declined"
)

type TradeRequest struct {
	bun.BaseModel `bun:"table:trade_requests,alias:trq"`

	ID          int64  `bun:"id,pk,autoincrement"`
	PostID      int64  `bun:"post_id,notnull"`
	RequesterID string `bun:"requester_id,notnull"`

	// The single card the requester puts up, and the card they picked from
	// the post's "have" side.
	OfferedCardID   string `bun:"offered_card_id,notnull"`
	RequestedCardID string `bun:"requested_card_id,notnull"`

	Message string             `bun:"message"`
	Status  TradeRequestStatus `bun:"status,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	Post      *TradePost `bun:"rel:belongs-to,join:post_id=id"`
	Requester *Trader    `bun:"rel:belongs-to,join:requester_id=id"`
}
