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

type TradeRequestRepository interface {
	DB() *bun.DB
	Create(ctx context.Context, request *models.TradeRequest) error
	GetByID(ctx context.Context, id int64) (*models.TradeRequest, error)
	GetByPost(ctx context.Context, postID int64) ([]*models.TradeRequest, error)
	GetByRequester(ctx context.Context, requesterID string) ([]*models.TradeRequest, error)
	Decline(ctx context.Context, id int64) error
	Accept(ctx context.Context, id int64, preview models.TradePreview, opener string) (*models.Negotiation, error)
	CountCreatedSince(ctx context.Context, requesterID string, since time.Time) (int, error)
}

type tradeRequestRepository struct {
	db *bun.DB
}

func NewTradeRequestRepository(db *bun.DB) TradeRequestRepository {
	return &tradeRequestRepository{db: db}
}

func (r *tradeRequestRepository) DB() *bun.DB {
	return r.db
}

// Create inserts the request and bumps the post's requests_count in one
// transaction so the denormalized counter stays consistent with the rows it
// counts.
func (r *tradeRequestRepository) Create(ctx context.Context, request *models.TradeRequest) error {
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	request.Status = models.TradeRequestPending

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.NewInsert().Model(request).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create trade request: %w", err)
	}

	if _, err = tx.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("requests_count = requests_count + 1").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", request.PostID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump requests count: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trade request: %w", err)
	}
	return nil
}

func (r *tradeRequestRepository) GetByID(ctx context.Context, id int64) (*models.TradeRequest, error) {
	request := new(models.TradeRequest)
	err := r.db.NewSelect().
		Model(request).
		Where("trq.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade request: %w", err)
	}
	return request, nil
}

func (r *tradeRequestRepository) GetByPost(ctx context.Context, postID int64) ([]*models.TradeRequest, error) {
	var requests []*models.TradeRequest
	err := r.db.NewSelect().
		Model(&requests).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get post's requests: %w", err)
	}
	return requests, nil
}

func (r *tradeRequestRepository) GetByRequester(ctx context.Context, requesterID string) ([]*models.TradeRequest, error) {
	var requests []*models.TradeRequest
	err := r.db.NewSelect().
		Model(&requests).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get trader's requests: %w", err)
	}
	return requests, nil
}

// Decline moves a pending request to declined and drops it back out of the
// post's requests_count, keeping the counter equal to the number of
// non-declined requests.
func (r *tradeRequestRepository) Decline(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	request := new(models.TradeRequest)
	err = tx.NewSelect().
		Model(request).
		Where("trq.id = ?", id).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get trade request: %w", err)
	}

	if request.Status != models.TradeRequestPending {
		return ErrRequestNotPending
	}

	if _, err = tx.NewUpdate().
		Model((*models.TradeRequest)(nil)).
		Set("status = ?", models.TradeRequestDeclined).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to decline trade request: %w", err)
	}

	if _, err = tx.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("requests_count = requests_count - 1").
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND requests_count > 0", request.PostID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop requests count: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit decline: %w", err)
	}
	return nil
}

// Accept is the single-winner transition. The request and its post are
// locked in one serializable transaction; the post's status is the
// arbitration point, so a concurrent accept of a sibling request or a
// concurrent expiry pass loses cleanly with a state error instead of
// overwriting anything. On success the negotiation channel is spawned with
// the item preview frozen and an opener message inserted.
func (r *tradeRequestRepository) Accept(ctx context.Context, id int64, preview models.TradePreview, opener string) (*models.Negotiation, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	request := new(models.TradeRequest)
	err = tx.NewSelect().
		Model(request).
		Where("trq.id = ?", id).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade request: %w", err)
	}

	if request.Status != models.TradeRequestPending {
		return nil, ErrRequestNotPending
	}

	post := new(models.TradePost)
	err = tx.NewSelect().
		Model(post).
		Where("tp.id = ?", request.PostID).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade post: %w", err)
	}

	if post.Status != models.TradePostActive {
		return nil, ErrPostNotActive
	}

	// An overdue post the sweeper has not reached yet is still expired as
	// far as acceptance goes. Mark it so and report the race.
	if !post.ExpiresAt.After(time.Now()) {
		if _, err = tx.NewUpdate().
			Model((*models.TradePost)(nil)).
			Set("status = ?", models.TradePostExpired).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", post.ID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark post expired: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit expiry: %w", err)
		}
		return nil, ErrPostExpired
	}

	result, err := tx.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("status = ?", models.TradePostMatched).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", post.ID, models.TradePostActive).
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to match trade post: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, ErrPostNotActive
	}

	if _, err = tx.NewUpdate().
		Model((*models.TradeRequest)(nil)).
		Set("status = ?", models.TradeRequestAccepted).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", request.ID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to accept trade request: %w", err)
	}

	negotiation := &models.Negotiation{
		PostID:    post.ID,
		RequestID: request.ID,
		HostID:    post.OwnerID,
		GuestID:   request.RequesterID,
		Preview:   preview,
		Status:    models.NegotiationActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err = tx.NewInsert().Model(negotiation).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create negotiation: %w", err)
	}

	if opener != "" {
		message := &models.Message{
			NegotiationID: negotiation.ID,
			SenderID:      post.OwnerID,
			Content:       opener,
			ContentType:   models.MessageContentText,
			IsSystem:      true,
			CreatedAt:     time.Now(),
		}
		if _, err = tx.NewInsert().Model(message).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create opener message: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit acceptance: %w", err)
	}

	slog.Info("Trade request accepted",
		slog.Int64("request_id", request.ID),
		slog.String("post_id", post.PostID),
		slog.String("host_id", post.OwnerID),
		slog.String("guest_id", request.RequesterID))

	return negotiation, nil
}

func (r *tradeRequestRepository) CountCreatedSince(ctx context.Context, requesterID string, since time.Time) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.TradeRequest)(nil)).
		Where("requester_id = ? AND created_at >= ?", requesterID, since).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count trader's requests: %w", err)
	}
	return count, nil
}
