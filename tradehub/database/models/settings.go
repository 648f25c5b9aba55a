package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Defaults used when the settings row is missing or a value is zero.
const (
	DefaultLimitTradePostPerTrader     = 5
	DefaultLimitCardPerPost            = 3
	DefaultTradePostDurationHours      = 72
	DefaultLimitRequestPerTraderPerDay = 10
)

// Settings is the single row of tunable trade limits. It is read at the top
// of every operation that needs it and mutated only through the admin path.
type Settings struct {
	bun.BaseModel `bun:"table:settings,alias:s"`

	ID                          int64 `bun:"id,pk"`
	LimitTradePostPerTrader     int   `bun:"limit_trade_post_per_trader,notnull"`
	LimitCardPerPost            int   `bun:"limit_card_per_post,notnull"`
	TradePostDurationHours      int   `bun:"trade_post_duration_hours,notnull"`
	LimitRequestPerTraderPerDay int   `bun:"limit_request_per_trader_per_day,notnull"`

	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// DefaultSettings returns the documented fallback limits.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                          1,
		LimitTradePostPerTrader:     DefaultLimitTradePostPerTrader,
		LimitCardPerPost:            DefaultLimitCardPerPost,
		TradePostDurationHours:      DefaultTradePostDurationHours,
		LimitRequestPerTraderPerDay: DefaultLimitRequestPerTraderPerDay,
	}
}

// PostDuration returns the configured post lifetime.
func (s *Settings) PostDuration() time.Duration {
	return time.Duration(s.TradePostDurationHours) * time.Hour
}
