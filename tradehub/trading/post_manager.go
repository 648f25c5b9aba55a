package trading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
)

const maxNoteLength = 500

// CardResolver resolves card IDs to catalog entries. The catalog subsystem
// owns the implementation; the trade lifecycle only needs rarity and name.
type CardResolver interface {
	Resolve(ctx context.Context, ids []string) ([]*models.Card, error)
}

// PostManager owns the trade post lifecycle: creation with validation and
// rate limiting, visibility, moderation overrides, and the expiry
// transition the sweeper calls.
type PostManager struct {
	posts    repositories.TradePostRepository
	settings repositories.SettingsRepository
	limiter  *RateLimiter
	resolver CardResolver
	idGen    *PostIDGenerator
}

func NewPostManager(
	posts repositories.TradePostRepository,
	settings repositories.SettingsRepository,
	limiter *RateLimiter,
	resolver CardResolver,
) *PostManager {
	return &PostManager{
		posts:    posts,
		settings: settings,
		limiter:  limiter,
		resolver: resolver,
		idGen:    NewPostIDGenerator(posts),
	}
}

// Create validates and inserts a new trade post for ownerID. All cards on
// both sides must exist, share one rarity class, and stay below the crown
// tier; the owner must have daily allowance left.
func (m *PostManager) Create(ctx context.Context, ownerID string, haveCards, wantCards []string, note string) (*models.TradePost, error) {
	settings, err := m.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if len(haveCards) == 0 || len(wantCards) == 0 {
		return nil, validationError("a trade post needs at least one card on each side")
	}
	if len(haveCards) > settings.LimitCardPerPost || len(wantCards) > settings.LimitCardPerPost {
		return nil, validationError("a trade post may list at most %d cards per side", settings.LimitCardPerPost)
	}
	if len([]rune(note)) > maxNoteLength {
		return nil, validationError("note may be at most %d characters", maxNoteLength)
	}

	if err := m.checkRarity(ctx, haveCards, wantCards); err != nil {
		return nil, err
	}

	remaining, err := m.limiter.RemainingPosts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if remaining <= 0 {
		return nil, rateLimitError("daily trade post limit of %d reached", settings.LimitTradePostPerTrader)
	}

	postID, err := m.idGen.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate post ID: %w", err)
	}

	post := &models.TradePost{
		PostID:    postID,
		OwnerID:   ownerID,
		HaveCards: haveCards,
		WantCards: wantCards,
		Note:      note,
		ExpiresAt: time.Now().Add(settings.PostDuration()),
	}

	if err := m.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	slog.Info("Trade post created",
		slog.String("post_id", post.PostID),
		slog.String("owner_id", ownerID),
		slog.Int("have_cards", len(haveCards)),
		slog.Int("want_cards", len(wantCards)))
	return post, nil
}

// checkRarity enforces the single-class rule across both sides and keeps
// crown cards off the market entirely.
func (m *PostManager) checkRarity(ctx context.Context, haveCards, wantCards []string) error {
	ids := make([]string, 0, len(haveCards)+len(wantCards))
	seen := make(map[string]bool, cap(ids))
	for _, id := range append(append([]string{}, haveCards...), wantCards...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	cards, err := m.resolver.Resolve(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve cards: %w", err)
	}

	byID := make(map[string]*models.Card, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	var class string
	for _, id := range ids {
		card, ok := byID[id]
		if !ok {
			return validationError("unknown card %q", id)
		}
		if !card.Tradable() {
			return validationError("card %q is crown rarity and cannot be traded", id)
		}
		if class == "" {
			class = card.Rarity
		} else if card.Rarity != class {
			return validationError("all cards on a post must share one rarity class")
		}
	}
	return nil
}

func (m *PostManager) GetByID(ctx context.Context, id int64) (*models.TradePost, error) {
	post, err := m.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("trade post %d not found", id)
		}
		return nil, err
	}
	return post, nil
}

// SetHidden toggles visibility without touching the lifecycle status.
// Idempotent.
func (m *PostManager) SetHidden(ctx context.Context, id int64, hidden bool) error {
	if err := m.posts.SetHidden(ctx, id, hidden); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("trade post %d not found", id)
		}
		return err
	}
	return nil
}

// SetStatus is the moderation override and is not reachable by ordinary
// traders.
func (m *PostManager) SetStatus(ctx context.Context, id int64, status models.TradePostStatus) error {
	if err := m.posts.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("trade post %d not found", id)
		}
		return err
	}
	return nil
}

// Cancel takes down the owner's own post. Only active posts can be
// cancelled; a post that was matched or expired in the meantime stays as
// it is and the caller gets a state error.
func (m *PostManager) Cancel(ctx context.Context, id int64) error {
	if err := m.posts.Cancel(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return notFoundError("trade post %d not found", id)
		case errors.Is(err, repositories.ErrPostNotActive):
			return stateError("post is no longer active")
		}
		return err
	}
	return nil
}

// Expire is called by the sweeper only. A post that is no longer active or
// not yet due is left alone; losing that race to an accept is expected.
func (m *PostManager) Expire(ctx context.Context, id int64) error {
	return m.posts.Expire(ctx, id)
}

func (m *PostManager) Remove(ctx context.Context, id int64) error {
	if err := m.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundError("trade post %d not found", id)
		}
		return err
	}
	return nil
}

func (m *PostManager) BulkRemove(ctx context.Context, ids []int64) error {
	return m.posts.BulkDelete(ctx, ids)
}
