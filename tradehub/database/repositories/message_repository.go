package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/uptrace/bun"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByNegotiation(ctx context.Context, negotiationID int64) ([]*models.Message, error)
	MarkRead(ctx context.Context, negotiationID int64, readerID string) error
	UnreadCount(ctx context.Context, negotiationID int64, readerID string) (int, error)
	GetOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*models.Message, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type messageRepository struct {
	db *bun.DB
}

func NewMessageRepository(db *bun.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	message.CreatedAt = time.Now()

	_, err := r.db.NewInsert().Model(message).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) GetByNegotiation(ctx context.Context, negotiationID int64) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.NewSelect().
		Model(&messages).
		Where("negotiation_id = ?", negotiationID).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get negotiation messages: %w", err)
	}
	return messages, nil
}

// MarkRead flips everything the other side sent. Re-running it is a no-op.
func (r *messageRepository) MarkRead(ctx context.Context, negotiationID int64, readerID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("is_read = ?", true).
		Where("negotiation_id = ? AND sender_id != ? AND is_read = false", negotiationID, readerID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, negotiationID int64, readerID string) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.Message)(nil)).
		Where("negotiation_id = ? AND sender_id != ? AND is_read = false", negotiationID, readerID).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (r *messageRepository) GetOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	query := r.db.NewSelect().
		Model(&messages).
		Where("created_at < ?", cutoff).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to get old messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.NewDelete().
		Model((*models.Message)(nil)).
		Where("created_at < ?", cutoff).
		Exec(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete old messages: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purged row count: %w", err)
	}
	return affected, nil
}
