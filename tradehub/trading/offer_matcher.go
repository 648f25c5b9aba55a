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

const maxRequestMessageLength = 300

// openerMessage is written into a freshly spawned negotiation so the
// channel never starts empty.
const openerMessage = "Trade request accepted. Work out the details here."

// OfferMatcher owns trade requests against a post: submission with the
// defensive expiry check, owner-side decline, and the single-winner accept
// that spawns the negotiation channel.
type OfferMatcher struct {
	posts    repositories.TradePostRepository
	requests repositories.TradeRequestRepository
	settings repositories.SettingsRepository
	limiter  *RateLimiter
	resolver CardResolver
}

func NewOfferMatcher(
	posts repositories.TradePostRepository,
	requests repositories.TradeRequestRepository,
	settings repositories.SettingsRepository,
	limiter *RateLimiter,
	resolver CardResolver,
) *OfferMatcher {
	return &OfferMatcher{
		posts:    posts,
		requests: requests,
		settings: settings,
		limiter:  limiter,
		resolver: resolver,
	}
}

// Submit files a counter-offer against a post. The expiry check runs here
// even though the sweeper also expires posts: the hourly pass may simply
// not have come around yet.
func (m *OfferMatcher) Submit(ctx context.Context, postID int64, requesterID, offeredCardID, requestedCardID, message string) (*models.TradeRequest, error) {
	post, err := m.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("trade post %d not found", postID)
		}
		return nil, err
	}

	if post.OwnerID == requesterID {
		return nil, validationError("cannot request a trade against your own post")
	}
	if post.Status != models.TradePostActive {
		return nil, validationError("trade post is no longer open for requests")
	}
	if !post.ExpiresAt.After(time.Now()) {
		return nil, validationError("trade post has expired")
	}
	if len([]rune(message)) > maxRequestMessageLength {
		return nil, validationError("message may be at most %d characters", maxRequestMessageLength)
	}

	if !containsCard(post.HaveCards, requestedCardID) {
		return nil, validationError("card %q is not offered on this post", requestedCardID)
	}

	cards, err := m.resolver.Resolve(ctx, []string{offeredCardID, requestedCardID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cards: %w", err)
	}
	offered := findCard(cards, offeredCardID)
	requested := findCard(cards, requestedCardID)
	if offered == nil {
		return nil, validationError("unknown card %q", offeredCardID)
	}
	if requested == nil {
		return nil, validationError("unknown card %q", requestedCardID)
	}
	if !offered.Tradable() {
		return nil, validationError("card %q is crown rarity and cannot be traded", offeredCardID)
	}
	if offered.Rarity != requested.Rarity {
		return nil, validationError("offered card must match the requested card's rarity class")
	}

	remaining, err := m.limiter.RemainingRequests(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if remaining <= 0 {
		settings, serr := m.settings.Get(ctx)
		if serr != nil {
			return nil, fmt.Errorf("failed to load settings: %w", serr)
		}
		return nil, rateLimitError("daily trade request limit of %d reached", settings.LimitRequestPerTraderPerDay)
	}

	request := &models.TradeRequest{
		PostID:          post.ID,
		RequesterID:     requesterID,
		OfferedCardID:   offeredCardID,
		RequestedCardID: requestedCardID,
		Message:         message,
	}

	if err := m.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	slog.Info("Trade request submitted",
		slog.Int64("request_id", request.ID),
		slog.String("post_id", post.PostID),
		slog.String("requester_id", requesterID))
	return request, nil
}

// Decline is owner-only and terminal for the request.
func (m *OfferMatcher) Decline(ctx context.Context, requestID int64, actingTraderID string) error {
	request, post, err := m.loadRequestWithPost(ctx, requestID)
	if err != nil {
		return err
	}

	if post.OwnerID != actingTraderID {
		return authorizationError("only the post owner may decline a request")
	}

	if err := m.requests.Decline(ctx, request.ID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRequestNotPending):
			return stateError("trade request was already answered")
		case errors.Is(err, repositories.ErrNotFound):
			return notFoundError("trade request %d not found", requestID)
		}
		return err
	}
	return nil
}

// Accept is owner-only and spawns the negotiation. The repository performs
// the actual check-and-transition atomically against the post's status;
// losing that race surfaces as a state error, which callers should present
// as "someone else already acted first".
func (m *OfferMatcher) Accept(ctx context.Context, requestID int64, actingTraderID string) (*models.Negotiation, error) {
	request, post, err := m.loadRequestWithPost(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if post.OwnerID != actingTraderID {
		return nil, authorizationError("only the post owner may accept a request")
	}

	preview, err := m.buildPreview(ctx, request)
	if err != nil {
		return nil, err
	}

	negotiation, err := m.requests.Accept(ctx, request.ID, preview, openerMessage)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrRequestNotPending):
			return nil, stateError("trade request was already answered")
		case errors.Is(err, repositories.ErrPostNotActive):
			return nil, stateError("another request was already accepted for this post")
		case errors.Is(err, repositories.ErrPostExpired):
			return nil, stateError("trade post expired before the request could be accepted")
		case errors.Is(err, repositories.ErrNotFound):
			return nil, notFoundError("trade request %d not found", requestID)
		}
		return nil, err
	}
	return negotiation, nil
}

// buildPreview freezes the two exchanged cards as they look right now, so
// later catalog edits do not retroactively alter negotiation history.
func (m *OfferMatcher) buildPreview(ctx context.Context, request *models.TradeRequest) (models.TradePreview, error) {
	cards, err := m.resolver.Resolve(ctx, []string{request.RequestedCardID, request.OfferedCardID})
	if err != nil {
		return models.TradePreview{}, fmt.Errorf("failed to resolve preview cards: %w", err)
	}

	hostCard := findCard(cards, request.RequestedCardID)
	guestCard := findCard(cards, request.OfferedCardID)
	if hostCard == nil || guestCard == nil {
		return models.TradePreview{}, fmt.Errorf("preview cards missing from catalog")
	}

	return models.TradePreview{
		HostCard:  models.CardSnapshot{CardID: hostCard.ID, Name: hostCard.Name, Rarity: hostCard.Rarity},
		GuestCard: models.CardSnapshot{CardID: guestCard.ID, Name: guestCard.Name, Rarity: guestCard.Rarity},
	}, nil
}

func (m *OfferMatcher) loadRequestWithPost(ctx context.Context, requestID int64) (*models.TradeRequest, *models.TradePost, error) {
	request, err := m.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, notFoundError("trade request %d not found", requestID)
		}
		return nil, nil, err
	}

	post, err := m.posts.GetByID(ctx, request.PostID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, notFoundError("trade post %d not found", request.PostID)
		}
		return nil, nil, err
	}
	return request, post, nil
}

func containsCard(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func findCard(cards []*models.Card, id string) *models.Card {
	for _, card := range cards {
		if card.ID == id {
			return card
		}
	}
	return nil
}
