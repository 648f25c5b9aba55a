// Package seed loads the card catalog from an exported JSON dump into
// Postgres. The hub never writes catalog rows at runtime, so this runs as a
// one-off command whenever a new card set ships.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/pockettcg/tradehub/tradehub/database/models"
)

const defaultBatchSize = 500

var validRarities = map[string]bool{
	models.RarityDiamond1: true,
	models.RarityDiamond2: true,
	models.RarityDiamond3: true,
	models.RarityDiamond4: true,
	models.RarityStar1:    true,
	models.RarityCrown:    true,
}

// jsonCard mirrors one record of the exported catalog dump.
type jsonCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	SetID    string `json:"set"`
	ImageURL string `json:"image"`
}

type Stats struct {
	Total    int
	Imported int
	Skipped  int
	Took     time.Duration
}

type Seeder struct {
	db        *bun.DB
	batchSize int
}

func NewSeeder(db *bun.DB) *Seeder {
	return &Seeder{db: db, batchSize: defaultBatchSize}
}

// SetBatchSize overrides the insert batch size (useful behind poolers).
func (s *Seeder) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// ImportCards reads the catalog dump at path and upserts every valid record.
// Records with a missing ID, an unknown rarity, or a duplicate ID are skipped
// and counted, never fatal.
func (s *Seeder) ImportCards(ctx context.Context, path string) (*Stats, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dump: %w", err)
	}

	var records []jsonCard
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog dump: %w", err)
	}

	stats := &Stats{Total: len(records)}
	seen := make(map[string]bool, len(records))
	now := time.Now()

	var batch []*models.Card
	for i, rec := range records {
		card, reason := convertRecord(rec, now)
		if reason != "" {
			stats.Skipped++
			slog.Warn("Skipping catalog record",
				slog.Int("record", i),
				slog.String("id", rec.ID),
				slog.String("reason", reason))
			continue
		}
		if seen[card.ID] {
			stats.Skipped++
			slog.Warn("Duplicate card ID in dump, keeping first",
				slog.Int("record", i),
				slog.String("id", card.ID))
			continue
		}
		seen[card.ID] = true

		batch = append(batch, card)
		if len(batch) >= s.batchSize {
			if err := s.upsertCards(ctx, batch); err != nil {
				return nil, err
			}
			stats.Imported += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.upsertCards(ctx, batch); err != nil {
			return nil, err
		}
		stats.Imported += len(batch)
	}

	stats.Took = time.Since(start)
	slog.Info("Catalog import completed",
		slog.Int("total", stats.Total),
		slog.Int("imported", stats.Imported),
		slog.Int("skipped", stats.Skipped),
		slog.Duration("took", stats.Took))
	return stats, nil
}

func convertRecord(rec jsonCard, now time.Time) (*models.Card, string) {
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return nil, "missing id"
	}
	if strings.TrimSpace(rec.Name) == "" {
		return nil, "missing name"
	}
	if !validRarities[rec.Rarity] {
		return nil, fmt.Sprintf("unknown rarity %q", rec.Rarity)
	}
	return &models.Card{
		ID:        id,
		Name:      strings.TrimSpace(rec.Name),
		Rarity:    rec.Rarity,
		SetID:     rec.SetID,
		ImageURL:  rec.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, ""
}

// upsertCards writes a batch, splitting in half on timeouts so one slow
// statement does not sink the whole import.
func (s *Seeder) upsertCards(ctx context.Context, cards []*models.Card) error {
	_, err := s.db.NewInsert().
		Model(&cards).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("rarity = EXCLUDED.rarity").
		Set("set_id = EXCLUDED.set_id").
		Set("image_url = EXCLUDED.image_url").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err == nil {
		return nil
	}

	if isTimeoutErr(err) && len(cards) > 1 {
		mid := len(cards) / 2
		slog.Warn("Batch upsert timed out, splitting",
			slog.Int("left", mid),
			slog.Int("right", len(cards)-mid))
		if err := s.upsertCards(ctx, cards[:mid]); err != nil {
			return err
		}
		return s.upsertCards(ctx, cards[mid:])
	}

	return fmt.Errorf("failed to upsert card batch: %w", err)
}

func isTimeoutErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "timeout") ||
		strings.Contains(s, "context deadline")
}
