package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/uptrace/bun"
)

type NegotiationRepository interface {
	DB() *bun.DB
	GetByID(ctx context.Context, id int64) (*models.Negotiation, error)
	GetByTrader(ctx context.Context, traderID string) ([]*models.Negotiation, error)
	Confirm(ctx context.Context, id int64, traderID string) (bool, error)
	Unconfirm(ctx context.Context, id int64, traderID string) error
	Cancel(ctx context.Context, id int64, traderID string) error
}

type negotiationRepository struct {
	db *bun.DB
}

func NewNegotiationRepository(db *bun.DB) NegotiationRepository {
	return &negotiationRepository{db: db}
}

func (r *negotiationRepository) DB() *bun.DB {
	return r.db
}

func (r *negotiationRepository) GetByID(ctx context.Context, id int64) (*models.Negotiation, error) {
	negotiation := new(models.Negotiation)
	err := r.db.NewSelect().
		Model(negotiation).
		Where("n.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get negotiation: %w", err)
	}
	return negotiation, nil
}

func (r *negotiationRepository) GetByTrader(ctx context.Context, traderID string) ([]*models.Negotiation, error) {
	var negotiations []*models.Negotiation
	err := r.db.NewSelect().
		Model(&negotiations).
		Where("host_id = ? OR guest_id = ?", traderID, traderID).
		Order("updated_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get trader's negotiations: %w", err)
	}
	return negotiations, nil
}

// Confirm sets the caller's confirmation flag and, when it finds both flags
// set afterwards, completes the negotiation and awards one trade point to
// each side. The row lock serializes the two sides' confirms: only the call
// that performs the active->completed transition grants points, so near
// simultaneous confirms can never double-award.
func (r *negotiationRepository) Confirm(ctx context.Context, id int64, traderID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	negotiation, err := lockNegotiation(ctx, tx, id)
	if err != nil {
		return false, err
	}

	if negotiation.Status != models.NegotiationActive {
		return false, ErrNegotiationNotActive
	}

	switch traderID {
	case negotiation.HostID:
		negotiation.HostConfirmed = true
	case negotiation.GuestID:
		negotiation.GuestConfirmed = true
	default:
		return false, ErrNotParticipant
	}

	completed := negotiation.HostConfirmed && negotiation.GuestConfirmed

	update := tx.NewUpdate().
		Model((*models.Negotiation)(nil)).
		Set("host_confirmed = ?", negotiation.HostConfirmed).
		Set("guest_confirmed = ?", negotiation.GuestConfirmed).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", id, models.NegotiationActive)

	if completed {
		update = update.Set("status = ?", models.NegotiationCompleted)
	}

	result, err := update.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update confirmation: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return false, ErrNegotiationNotActive
	}

	if completed {
		if _, err = tx.NewUpdate().
			Model((*models.Trader)(nil)).
			Set("trade_point = trade_point + 1").
			Set("updated_at = ?", time.Now()).
			Where("id IN (?)", bun.In([]string{negotiation.HostID, negotiation.GuestID})).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to award trade points: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit confirmation: %w", err)
	}

	if completed {
		slog.Info("Negotiation completed",
			slog.Int64("negotiation_id", id),
			slog.String("host_id", negotiation.HostID),
			slog.String("guest_id", negotiation.GuestID))
	}
	return completed, nil
}

// Unconfirm clears the caller's flag. Points are only ever granted on the
// completion transition, never clawed back here.
func (r *negotiationRepository) Unconfirm(ctx context.Context, id int64, traderID string) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	negotiation, err := lockNegotiation(ctx, tx, id)
	if err != nil {
		return err
	}

	if negotiation.Status != models.NegotiationActive {
		return ErrNegotiationNotActive
	}

	var column string
	switch traderID {
	case negotiation.HostID:
		column = "host_confirmed"
	case negotiation.GuestID:
		column = "guest_confirmed"
	default:
		return ErrNotParticipant
	}

	if _, err = tx.NewUpdate().
		Model((*models.Negotiation)(nil)).
		Set(column+" = ?", false).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear confirmation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit unconfirm: %w", err)
	}
	return nil
}

func (r *negotiationRepository) Cancel(ctx context.Context, id int64, traderID string) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	negotiation, err := lockNegotiation(ctx, tx, id)
	if err != nil {
		return err
	}

	if negotiation.Status != models.NegotiationActive {
		return ErrNegotiationNotActive
	}
	if !negotiation.Participant(traderID) {
		return ErrNotParticipant
	}

	result, err := tx.NewUpdate().
		Model((*models.Negotiation)(nil)).
		Set("status = ?", models.NegotiationCancelled).
		Set("cancelled_by = ?", traderID).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", id, models.NegotiationActive).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to cancel negotiation: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNegotiationNotActive
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	slog.Info("Negotiation cancelled",
		slog.Int64("negotiation_id", id),
		slog.String("cancelled_by", traderID))
	return nil
}

func lockNegotiation(ctx context.Context, tx bun.Tx, id int64) (*models.Negotiation, error) {
	negotiation := new(models.Negotiation)
	err := tx.NewSelect().
		Model(negotiation).
		Where("n.id = ?", id).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get negotiation: %w", err)
	}
	return negotiation, nil
}
