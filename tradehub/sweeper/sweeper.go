package sweeper

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pockettcg/tradehub/tradehub/database/repositories"
	"github.com/pockettcg/tradehub/tradehub/utils"
)

const (
	DefaultExpiryInterval   = time.Hour
	DefaultPurgeInterval    = 24 * time.Hour
	DefaultMessageRetention = 30 * 24 * time.Hour

	passTimeout      = 30 * time.Second
	expireGoroutines = 8
	archiveBatchSize = 500
)

// PostExpirer is the guarded expiry transition owned by the post manager.
type PostExpirer interface {
	Expire(ctx context.Context, id int64) error
}

// Sweeper runs the two background schedules: the hourly pass that retires
// overdue trade posts and the daily pass that purges (and optionally
// archives) old negotiation messages. Both passes are idempotent; races
// against trader actions resolve as no-ops inside the guarded transitions.
type Sweeper struct {
	posts    repositories.TradePostRepository
	messages repositories.MessageRepository
	expirer  PostExpirer
	archiver Archiver

	expiryInterval   time.Duration
	purgeInterval    time.Duration
	messageRetention time.Duration
}

type Config struct {
	ExpiryInterval   time.Duration
	PurgeInterval    time.Duration
	MessageRetention time.Duration
}

func New(
	posts repositories.TradePostRepository,
	messages repositories.MessageRepository,
	expirer PostExpirer,
	archiver Archiver,
	cfg Config,
) *Sweeper {
	if cfg.ExpiryInterval <= 0 {
		cfg.ExpiryInterval = DefaultExpiryInterval
	}
	if cfg.PurgeInterval <= 0 {
		cfg.PurgeInterval = DefaultPurgeInterval
	}
	if cfg.MessageRetention <= 0 {
		cfg.MessageRetention = DefaultMessageRetention
	}

	return &Sweeper{
		posts:            posts,
		messages:         messages,
		expirer:          expirer,
		archiver:         archiver,
		expiryInterval:   cfg.ExpiryInterval,
		purgeInterval:    cfg.PurgeInterval,
		messageRetention: cfg.MessageRetention,
	}
}

// Start registers both schedules with the process manager.
func (s *Sweeper) Start(bpm *utils.BackgroundProcessManager) {
	bpm.StartProcess("post-expiry", "hourly trade post expiry sweep", func(ctx context.Context) {
		s.runOnSchedule(ctx, s.expiryInterval, s.ExpiryPass)
	})
	bpm.StartProcess("message-retention", "daily negotiation message purge", func(ctx context.Context) {
		s.runOnSchedule(ctx, s.purgeInterval, s.PurgePass)
	})
}

func (s *Sweeper) runOnSchedule(ctx context.Context, interval time.Duration, pass func(ctx context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			passCtx, cancel := context.WithTimeout(ctx, passTimeout)
			if err := pass(passCtx); err != nil {
				slog.Error("Sweep pass failed",
					slog.Duration("interval", interval),
					slog.Any("error", err))
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}
}

// ExpiryPass retires every post that is still active past its expiry time.
// Each post goes through the manager's compare-and-set transition, so a
// post matched between the scan and the update is simply skipped.
func (s *Sweeper) ExpiryPass(ctx context.Context) error {
	ids, err := s.posts.GetDue(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(expireGoroutines)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			return s.expirer.Expire(gctx, id)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Expiry sweep finished",
		slog.Int("due_posts", len(ids)))
	return nil
}

// PurgePass deletes messages older than the retention window, regardless
// of their negotiation's status. Negotiations themselves are history and
// stay. With an archiver configured, messages are copied to cold storage
// before the delete.
func (s *Sweeper) PurgePass(ctx context.Context) error {
	cutoff := time.Now().Add(-s.messageRetention)

	if s.archiver != nil {
		if err := s.archiveBefore(ctx, cutoff); err != nil {
			return err
		}
	}

	purged, err := s.messages.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if purged > 0 {
		slog.Info("Message retention purge finished",
			slog.Int64("purged", purged),
			slog.Time("cutoff", cutoff))
	}
	return nil
}

func (s *Sweeper) archiveBefore(ctx context.Context, cutoff time.Time) error {
	messages, err := s.messages.GetOlderThan(ctx, cutoff, 0)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for start := 0; start < len(messages); start += archiveBatchSize {
		end := start + archiveBatchSize
		if end > len(messages) {
			end = len(messages)
		}
		batch := messages[start:end]
		g.Go(func() error {
			return s.archiver.Archive(gctx, batch)
		})
	}

	return g.Wait()
}
