package trading

import (
	"context"
	"fmt"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/repositories"
)

// RateLimiter computes a trader's remaining daily allowance of trade posts
// and trade requests. "Daily" means the current UTC calendar day; the count
// resets at midnight UTC rather than rolling over a 24h window.
//
// Read-only: the limiter never records usage itself, creation rows are the
// usage.
type RateLimiter struct {
	posts    repositories.TradePostRepository
	requests repositories.TradeRequestRepository
	settings repositories.SettingsRepository

	now func() time.Time
}

func NewRateLimiter(
	posts repositories.TradePostRepository,
	requests repositories.TradeRequestRepository,
	settings repositories.SettingsRepository,
) *RateLimiter {
	return &RateLimiter{
		posts:    posts,
		requests: requests,
		settings: settings,
		now:      time.Now,
	}
}

func (l *RateLimiter) RemainingPosts(ctx context.Context, traderID string) (int, error) {
	settings, err := l.settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}

	count, err := l.posts.CountCreatedSince(ctx, traderID, l.dayStart())
	if err != nil {
		return 0, fmt.Errorf("failed to count today's posts: %w", err)
	}

	return settings.LimitTradePostPerTrader - count, nil
}

func (l *RateLimiter) RemainingRequests(ctx context.Context, traderID string) (int, error) {
	settings, err := l.settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}

	count, err := l.requests.CountCreatedSince(ctx, traderID, l.dayStart())
	if err != nil {
		return 0, fmt.Errorf("failed to count today's requests: %w", err)
	}

	return settings.LimitRequestPerTraderPerDay - count, nil
}

func (l *RateLimiter) dayStart() time.Time {
	now := l.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
