package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/uptrace/bun"
)

type SettingsRepository interface {
	// Get returns the settings row, falling back to the documented
	// defaults when the row is missing or individual values are unset.
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

type settingsRepository struct {
	db *bun.DB
}

func NewSettingsRepository(db *bun.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	settings := new(models.Settings)
	err := r.db.NewSelect().
		Model(settings).
		Where("id = 1").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	applyDefaults(settings)
	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	settings.ID = 1
	settings.UpdatedAt = time.Now()
	applyDefaults(settings)

	_, err := r.db.NewInsert().
		Model(settings).
		On("CONFLICT (id) DO UPDATE").
		Set("limit_trade_post_per_trader = EXCLUDED.limit_trade_post_per_trader").
		Set("limit_card_per_post = EXCLUDED.limit_card_per_post").
		Set("trade_post_duration_hours = EXCLUDED.trade_post_duration_hours").
		Set("limit_request_per_trader_per_day = EXCLUDED.limit_request_per_trader_per_day").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

func applyDefaults(s *models.Settings) {
	if s.LimitTradePostPerTrader <= 0 {
		s.LimitTradePostPerTrader = models.DefaultLimitTradePostPerTrader
	}
	if s.LimitCardPerPost <= 0 {
		s.LimitCardPerPost = models.DefaultLimitCardPerPost
	}
	if s.TradePostDurationHours <= 0 {
		s.TradePostDurationHours = models.DefaultTradePostDurationHours
	}
	if s.LimitRequestPerTraderPerDay <= 0 {
		s.LimitRequestPerTraderPerDay = models.DefaultLimitRequestPerTraderPerDay
	}
}
