package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TradePostStatus string

const (
	TradePostActive    TradePostStatus = "active"
	TradePostMatched   TradePostStatus = "matched"
	TradePostExpired   TradePostStatus = "expired"
	TradePostCancelled TradePostStatus = "cancelled"
)

type TradePost struct {
	bun.BaseModel `bun:"table:trade_posts,alias:tp"`

	ID      int64  `bun:"id,pk,autoincrement"`
	PostID  string `bun:"post_id,notnull,unique"`
	OwnerID string `bun:"owner_id,notnull"`

	// Card IDs offered and sought, in the order the owner listed them.
	HaveCards []string `bun:"have_cards,type:jsonb"`
	WantCards []string `bun:"want_cards,type:jsonb"`

	Note          string          `bun:"note"`
	Status        TradePostStatus `bun:"status,notnull"`
	IsHidden      bool            `bun:"is_hidden,notnull,default:false"`
	ExpiresAt     time.Time       `bun:"expires_at,notnull"`
	RequestsCount int             `bun:"requests_count,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	Owner *Trader `bun:"rel:belongs-to,join:owner_id=id"`
}
