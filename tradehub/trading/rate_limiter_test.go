package trading

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories/mock"
)

func Test_RateLimiter_RemainingPosts(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		created int
		want    int
	}{
		{name: "NothingUsed", limit: 5, created: 0, want: 5},
		{name: "PartiallyUsed", limit: 5, created: 3, want: 2},
		{name: "Exhausted", limit: 5, created: 5, want: 0},
		{name: "OverLimit", limit: 5, created: 7, want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			settings := mock.NewMockSettingsRepository(ctrl)
			settings.EXPECT().Get(gomock.Any()).Return(&models.Settings{
				LimitTradePostPerTrader: tt.limit,
			}, nil)

			posts := mock.NewMockTradePostRepository(ctrl)
			posts.EXPECT().
				CountCreatedSince(gomock.Any(), "trader-1", gomock.Any()).
				Return(tt.created, nil)

			limiter := NewRateLimiter(posts, nil, settings)

			got, err := limiter.RemainingPosts(context.Background(), "trader-1")
			if err != nil {
				t.Fatalf("RemainingPosts() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RemainingPosts() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_RateLimiter_DayBoundaryIsUTC(t *testing.T) {
	ctrl := gomock.NewController(t)

	// 23:30 UTC; the window must start at midnight of the same UTC day,
	// not 24 hours back.
	fakeNow := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	wantStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().
		CountCreatedSince(gomock.Any(), "trader-1", wantStart).
		Return(0, nil)

	limiter := NewRateLimiter(nil, requests, settings)
	limiter.now = func() time.Time { return fakeNow }

	got, err := limiter.RemainingRequests(context.Background(), "trader-1")
	if err != nil {
		t.Fatalf("RemainingRequests() error = %v", err)
	}
	if got != models.DefaultLimitRequestPerTraderPerDay {
		t.Errorf("RemainingRequests() = %d, want %d", got, models.DefaultLimitRequestPerTraderPerDay)
	}
}

func Test_RateLimiter_LocalTimezoneDoesNotShiftWindow(t *testing.T) {
	ctrl := gomock.NewController(t)

	// 01:00 on June 16 in UTC+10 is still June 15 in UTC.
	loc := time.FixedZone("UTC+10", 10*3600)
	fakeNow := time.Date(2025, 6, 16, 1, 0, 0, 0, loc)
	wantStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().
		CountCreatedSince(gomock.Any(), "trader-1", wantStart).
		Return(1, nil)

	limiter := NewRateLimiter(posts, nil, settings)
	limiter.now = func() time.Time { return fakeNow }

	got, err := limiter.RemainingPosts(context.Background(), "trader-1")
	if err != nil {
		t.Fatalf("RemainingPosts() error = %v", err)
	}
	if got != models.DefaultLimitTradePostPerTrader-1 {
		t.Errorf("RemainingPosts() = %d, want %d", got, models.DefaultLimitTradePostPerTrader-1)
	}
}
