package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TraderStatus string

const (
	TraderStatusActive TraderStatus = "active"
	TraderStatusBanned TraderStatus = "banned"
)

type Trader struct {
	bun.BaseModel `bun:"table:traders,alias:tr"`

	ID         string       `bun:"id,pk"`
	Username   string       `bun:"username,notnull"`
	FriendCode string       `bun:"friend_code,notnull"`
	LegitPoint int64        `bun:"legit_point,notnull,default:0"`
	TradePoint int64        `bun:"trade_point,notnull,default:0"`
	Status     TraderStatus `bun:"status,notnull,default:'active'"`
	IsAdmin    bool         `bun:"is_admin,notnull,default:false"`

	// Presence state, maintained by the presence tracker. IsOnline is a
	// tri-state: nil means the client never reported and only last_seen_at
	// can be consulted.
	IsOnline   *bool      `bun:"is_online"`
	LastSeenAt *time.Time `bun:"last_seen_at"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
