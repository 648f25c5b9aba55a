package models

import (
	"time"

	"github.com/uptrace/bun"
)

type NegotiationStatus string

const (
	NegotiationActive    NegotiationStatus = "active"
	NegotiationCompleted NegotiationStatus = "completed"
	NegotiationCancelled NegotiationStatus = "cancelled"
)

// CardSnapshot is what a negotiation remembers about an exchanged card.
// Captured at acceptance time so later catalog edits never rewrite history.
type CardSnapshot struct {
	CardID string `json:"card_id"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

// TradePreview is the frozen pair of cards a negotiation was opened for.
// HostCard comes from the post's "have" side, GuestCard from the requester.
type TradePreview struct {
	HostCard  CardSnapshot `json:"host_card"`
	GuestCard CardSnapshot `json:"guest_card"`
}

type Negotiation struct {
	bun.BaseModel `bun:"table:negotiations,alias:n"`

	ID        int64  `bun:"id,pk,autoincrement"`
	PostID    int64  `bun:"post_id,notnull"`
	RequestID int64  `bun:"request_id,notnull,unique"`
	HostID    string `bun:"host_id,notnull"`
	GuestID   string `bun:"guest_id,notnull"`

	Preview TradePreview `bun:"preview,type:jsonb"`

	Status         NegotiationStatus `bun:"status,notnull"`
	HostConfirmed  bool              `bun:"host_confirmed,notnull,default:false"`
	GuestConfirmed bool              `bun:"guest_confirmed,notnull,default:false"`
	CancelledBy    string            `bun:"cancelled_by"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	Host  *Trader `bun:"rel:belongs-to,join:host_id=id"`
	Guest *Trader `bun:"rel:belongs-to,join:guest_id=id"`
}

// Participant reports whether traderID is one of the two parties.
func (n *Negotiation) Participant(traderID string) bool {
	return traderID == n.HostID || traderID == n.GuestID
}
