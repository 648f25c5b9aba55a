package presence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/repositories"
)

// DefaultOnlineTimeout is how long a trader stays "online" after their last
// heartbeat when no offline signal arrives. Clients heartbeat every 30s, so
// one missed beat is tolerated.
const DefaultOnlineTimeout = 60 * time.Second

// Tracker maintains trader online state from client heartbeats. The
// timeout fallback exists because the "page is closing" signal is
// best-effort and routinely lost to crashes and dropped connections.
// Presence is display state: last write wins, nothing here locks.
type Tracker struct {
	traders repositories.TraderRepository
	timeout time.Duration

	now func() time.Time
}

func New(traders repositories.TraderRepository, timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = DefaultOnlineTimeout
	}
	return &Tracker{
		traders: traders,
		timeout: timeout,
		now:     time.Now,
	}
}

// Heartbeat records that the trader's client is alive right now. Called on
// login, on a ~30s interval, and when a backgrounded tab regains focus.
func (t *Tracker) Heartbeat(ctx context.Context, traderID string) error {
	return t.traders.SetOnline(ctx, traderID, t.now())
}

// SetOffline records an explicit logout or unload beacon. Unknown traders
// are ignored; beacons can outlive accounts.
func (t *Tracker) SetOffline(ctx context.Context, traderID string) error {
	if err := t.traders.SetOffline(ctx, traderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	slog.Debug("Trader went offline", slog.String("trader_id", traderID))
	return nil
}

// IsOnline derives the displayed state. An explicit offline wins outright;
// otherwise the trader counts as online only while the last heartbeat is
// within the timeout window, so a vanished client drifts offline on its
// own.
func (t *Tracker) IsOnline(ctx context.Context, traderID string) (bool, error) {
	trader, err := t.traders.GetByID(ctx, traderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if trader.IsOnline != nil && !*trader.IsOnline {
		return false, nil
	}
	if trader.LastSeenAt == nil {
		return false, nil
	}
	return trader.LastSeenAt.After(t.now().Add(-t.timeout)), nil
}
