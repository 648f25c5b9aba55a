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

type TradePostRepository interface {
	DB() *bun.DB
	Create(ctx context.Context, post *models.TradePost) error
	GetByID(ctx context.Context, id int64) (*models.TradePost, error)
	GetByPostID(ctx context.Context, postID string) (*models.TradePost, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*models.TradePost, error)
	GetVisible(ctx context.Context, limit, offset int) ([]*models.TradePost, error)
	SetHidden(ctx context.Context, id int64, hidden bool) error
	SetStatus(ctx context.Context, id int64, status models.TradePostStatus) error
	Cancel(ctx context.Context, id int64) error
	Expire(ctx context.Context, id int64) error
	GetDue(ctx context.Context) ([]int64, error)
	Delete(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) error
	CountCreatedSince(ctx context.Context, ownerID string, since time.Time) (int, error)
	CountActive(ctx context.Context) (int, error)
	PostIDExists(ctx context.Context, postID string) (bool, error)
}

type tradePostRepository struct {
	db *bun.DB
}

func NewTradePostRepository(db *bun.DB) TradePostRepository {
	return &tradePostRepository{db: db}
}

func (r *tradePostRepository) DB() *bun.DB {
	return r.db
}

func (r *tradePostRepository) Create(ctx context.Context, post *models.TradePost) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	post.Status = models.TradePostActive
	post.RequestsCount = 0

	_, err := r.db.NewInsert().Model(post).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create trade post: %w", err)
	}
	return nil
}

func (r *tradePostRepository) GetByID(ctx context.Context, id int64) (*models.TradePost, error) {
	post := new(models.TradePost)
	err := r.db.NewSelect().
		Model(post).
		Where("tp.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade post: %w", err)
	}
	return post, nil
}

func (r *tradePostRepository) GetByPostID(ctx context.Context, postID string) (*models.TradePost, error) {
	post := new(models.TradePost)
	err := r.db.NewSelect().
		Model(post).
		Where("post_id = ?", postID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade post: %w", err)
	}
	return post, nil
}

func (r *tradePostRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.TradePost, error) {
	var posts []*models.TradePost
	err := r.db.NewSelect().
		Model(&posts).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get trader's posts: %w", err)
	}
	return posts, nil
}

func (r *tradePostRepository) GetVisible(ctx context.Context, limit, offset int) ([]*models.TradePost, error) {
	var posts []*models.TradePost
	err := r.db.NewSelect().
		Model(&posts).
		Where("status = ? AND is_hidden = false", models.TradePostActive).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get visible posts: %w", err)
	}
	return posts, nil
}

func (r *tradePostRepository) SetHidden(ctx context.Context, id int64, hidden bool) error {
	result, err := r.db.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("is_hidden = ?", hidden).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to set post hidden: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus is the moderation override: it moves a post to any status from
// any status, unlike the guarded transitions the lifecycle itself uses.
func (r *tradePostRepository) SetStatus(ctx context.Context, id int64, status models.TradePostStatus) error {
	result, err := r.db.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to set post status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel is the owner-facing takedown and only moves active posts. A post
// that was already matched, expired, or cancelled keeps its status; the
// caller learns it lost the race through ErrPostNotActive.
func (r *tradePostRepository) Cancel(ctx context.Context, id int64) error {
	result, err := r.db.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("status = ?", models.TradePostCancelled).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", id, models.TradePostActive).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to cancel trade post: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		exists, err := r.db.NewSelect().
			Model((*models.TradePost)(nil)).
			Where("id = ?", id).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check trade post: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrPostNotActive
	}
	return nil
}

// Expire moves a single overdue post to expired. The WHERE clause is the
// whole point: a post that was matched, cancelled, or not yet due is left
// untouched, so racing the accept path is harmless.
func (r *tradePostRepository) Expire(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.TradePost)(nil)).
		Set("status = ?", models.TradePostExpired).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ? AND expires_at <= ?", id, models.TradePostActive, time.Now()).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to expire trade post: %w", err)
	}
	return nil
}

// GetDue lists posts that are still active past their expiry time; the
// hourly sweep feeds these through Expire one by one.
func (r *tradePostRepository) GetDue(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.NewSelect().
		Model((*models.TradePost)(nil)).
		Column("id").
		Where("status = ? AND expires_at <= ?", models.TradePostActive, time.Now()).
		Scan(ctx, &ids)

	if err != nil {
		return nil, fmt.Errorf("failed to list due posts: %w", err)
	}
	return ids, nil
}

func (r *tradePostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().
		Model((*models.TradePost)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete trade post: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tradePostRepository) BulkDelete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.NewDelete().
		Model((*models.TradePost)(nil)).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to bulk delete trade posts: %w", err)
	}
	return nil
}

func (r *tradePostRepository) CountCreatedSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.TradePost)(nil)).
		Where("owner_id = ? AND created_at >= ?", ownerID, since).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count trader's posts: %w", err)
	}
	return count, nil
}

func (r *tradePostRepository) CountActive(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.TradePost)(nil)).
		Where("status = ?", models.TradePostActive).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count active posts: %w", err)
	}
	return count, nil
}

func (r *tradePostRepository) PostIDExists(ctx context.Context, postID string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.TradePost)(nil)).
		Where("post_id = ?", postID).
		Exists(ctx)

	return exists, err
}
