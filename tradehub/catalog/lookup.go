package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
)

const (
	cacheSize          = 10000
	defaultCacheExpiry = 10 * time.Minute
)

type cachedCard struct {
	card      *models.Card
	timestamp time.Time
}

// Lookup resolves card IDs to catalog entries for the trade lifecycle's
// rarity checks and preview snapshots. The card catalog changes rarely, so
// entries are served from an LRU cache with a short expiry.
type Lookup struct {
	cards       repositories.CardRepository
	cache       *lru.Cache
	cacheExpiry time.Duration
}

func NewLookup(cards repositories.CardRepository) *Lookup {
	cache, _ := lru.New(cacheSize)
	return &Lookup{
		cards:       cards,
		cache:       cache,
		cacheExpiry: defaultCacheExpiry,
	}
}

// Resolve returns the catalog entries for ids. Unknown IDs are simply
// absent from the result; callers decide whether that is an error.
func (l *Lookup) Resolve(ctx context.Context, ids []string) ([]*models.Card, error) {
	result := make([]*models.Card, 0, len(ids))
	var missing []string

	for _, id := range ids {
		if card := l.fromCache(id); card != nil {
			result = append(result, card)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		fetched, err := l.cards.GetByIDs(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch cards: %w", err)
		}
		for _, card := range fetched {
			l.cache.Add(card.ID, cachedCard{card: card, timestamp: time.Now()})
			result = append(result, card)
		}
	}

	return result, nil
}

func (l *Lookup) fromCache(id string) *models.Card {
	value, ok := l.cache.Get(id)
	if !ok {
		return nil
	}
	entry, ok := value.(cachedCard)
	if !ok || time.Since(entry.timestamp) > l.cacheExpiry {
		l.cache.Remove(id)
		return nil
	}
	return entry.card
}

// cardSource implements fuzzy.Source over catalog entries.
type cardSource []*models.Card

func (s cardSource) String(i int) string {
	return strings.ToLower(s[i].Name)
}

func (s cardSource) Len() int {
	return len(s)
}

// SearchByName fuzzy-matches query against card names, best matches first.
// This backs the admin card picker, nothing on the hot trade path.
func (l *Lookup) SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	all, err := l.cards.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	matches := fuzzy.FindFrom(strings.ToLower(strings.TrimSpace(query)), cardSource(all))

	results := make([]*models.Card, 0, limit)
	for _, match := range matches {
		results = append(results, all[match.Index])
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}
