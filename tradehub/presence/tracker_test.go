package presence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
	"github.com/pockettcg/tradehub/tradehub/database/repositories/mock"
)

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func TestTracker_Heartbeat(t *testing.T) {
	ctrl := gomock.NewController(t)

	fakeNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	traders := mock.NewMockTraderRepository(ctrl)
	traders.EXPECT().SetOnline(gomock.Any(), "trader-1", fakeNow).Return(nil)

	tracker := New(traders, 0)
	tracker.now = func() time.Time { return fakeNow }

	require.NoError(t, tracker.Heartbeat(context.Background(), "trader-1"))
}

func TestTracker_SetOffline_UnknownTraderIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)

	traders := mock.NewMockTraderRepository(ctrl)
	traders.EXPECT().SetOffline(gomock.Any(), "gone").Return(repositories.ErrNotFound)

	tracker := New(traders, 0)

	require.NoError(t, tracker.SetOffline(context.Background(), "gone"))
}

func TestTracker_IsOnline(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		trader *models.Trader
		want   bool
	}{
		{
			name: "RecentHeartbeat",
			trader: &models.Trader{
				ID:         "trader-1",
				IsOnline:   boolPtr(true),
				LastSeenAt: timePtr(now.Add(-30 * time.Second)),
			},
			want: true,
		},
		{
			name: "HeartbeatTimedOut",
			trader: &models.Trader{
				ID:         "trader-1",
				IsOnline:   boolPtr(true),
				LastSeenAt: timePtr(now.Add(-5 * time.Minute)),
			},
			want: false,
		},
		{
			name: "ExplicitOfflineWinsOverFreshHeartbeat",
			trader: &models.Trader{
				ID:         "trader-1",
				IsOnline:   boolPtr(false),
				LastSeenAt: timePtr(now.Add(-time.Second)),
			},
			want: false,
		},
		{
			name:   "NeverSeen",
			trader: &models.Trader{ID: "trader-1"},
			want:   false,
		},
		{
			name: "NoExplicitFlagButRecentHeartbeat",
			trader: &models.Trader{
				ID:         "trader-1",
				LastSeenAt: timePtr(now.Add(-10 * time.Second)),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			traders := mock.NewMockTraderRepository(ctrl)
			traders.EXPECT().GetByID(gomock.Any(), "trader-1").Return(tt.trader, nil)

			tracker := New(traders, DefaultOnlineTimeout)
			tracker.now = func() time.Time { return now }

			online, err := tracker.IsOnline(context.Background(), "trader-1")
			require.NoError(t, err)
			require.Equal(t, tt.want, online)
		})
	}
}

func TestTracker_IsOnline_UnknownTrader(t *testing.T) {
	ctrl := gomock.NewController(t)

	traders := mock.NewMockTraderRepository(ctrl)
	traders.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, repositories.ErrNotFound)

	tracker := New(traders, 0)

	online, err := tracker.IsOnline(context.Background(), "gone")
	require.NoError(t, err)
	require.False(t, online)
}
