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

type TraderRepository interface {
	DB() *bun.DB
	Create(ctx context.Context, trader *models.Trader) error
	GetByID(ctx context.Context, id string) (*models.Trader, error)
	SetOnline(ctx context.Context, id string, at time.Time) error
	SetOffline(ctx context.Context, id string) error
	GetTraderCount(ctx context.Context) (int, error)
}

type traderRepository struct {
	db *bun.DB
}

func NewTraderRepository(db *bun.DB) TraderRepository {
	return &traderRepository{db: db}
}

func (r *traderRepository) DB() *bun.DB {
	return r.db
}

func (r *traderRepository) Create(ctx context.Context, trader *models.Trader) error {
	trader.CreatedAt = time.Now()
	trader.UpdatedAt = time.Now()
	if trader.Status == "" {
		trader.Status = models.TraderStatusActive
	}

	_, err := r.db.NewInsert().Model(trader).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create trader: %w", err)
	}
	return nil
}

func (r *traderRepository) GetByID(ctx context.Context, id string) (*models.Trader, error) {
	trader := new(models.Trader)
	err := r.db.NewSelect().
		Model(trader).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trader: %w", err)
	}
	return trader, nil
}

// SetOnline records a heartbeat. Presence is last-write-wins display state,
// so a plain update is enough.
func (r *traderRepository) SetOnline(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.Trader)(nil)).
		Set("is_online = ?", true).
		Set("last_seen_at = ?", at).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to set trader online: %w", err)
	}
	return nil
}

func (r *traderRepository) SetOffline(ctx context.Context, id string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Trader)(nil)).
		Set("is_online = ?", false).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to set trader offline: %w", err)
	}
	return nil
}

func (r *traderRepository) GetTraderCount(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.Trader)(nil)).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count traders: %w", err)
	}
	return count, nil
}
