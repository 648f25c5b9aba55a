package sweeper

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories/mock"
)

// expirerStub records which posts the sweep asked to expire.
type expirerStub struct {
	mu      sync.Mutex
	expired []int64
}

func (e *expirerStub) Expire(_ context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.expired = append(e.expired, id)
	return nil
}

func TestSweeper_ExpiryPass(t *testing.T) {
	ctrl := gomock.NewController(t)

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetDue(gomock.Any()).Return([]int64{11, 12, 13}, nil)

	expirer := &expirerStub{}
	sw := New(posts, nil, expirer, nil, Config{})

	require.NoError(t, sw.ExpiryPass(context.Background()))

	sort.Slice(expirer.expired, func(i, j int) bool { return expirer.expired[i] < expirer.expired[j] })
	require.Equal(t, []int64{11, 12, 13}, expirer.expired)
}

func TestSweeper_ExpiryPass_NothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetDue(gomock.Any()).Return(nil, nil)

	expirer := &expirerStub{}
	sw := New(posts, nil, expirer, nil, Config{})

	require.NoError(t, sw.ExpiryPass(context.Background()))
	require.Empty(t, expirer.expired)
}

func TestSweeper_PurgePass_WithoutArchiver(t *testing.T) {
	ctrl := gomock.NewController(t)

	messages := mock.NewMockMessageRepository(ctrl)
	messages.EXPECT().
		DeleteOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().Add(-30 * 24 * time.Hour)
			require.WithinDuration(t, expected, cutoff, time.Minute)
			return 42, nil
		})

	sw := New(nil, messages, nil, nil, Config{})

	require.NoError(t, sw.PurgePass(context.Background()))
}

// archiverStub captures everything offered for cold storage.
type archiverStub struct {
	mu       sync.Mutex
	archived []*models.Message
}

func (a *archiverStub) Archive(_ context.Context, batch []*models.Message) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.archived = append(a.archived, batch...)
	return nil
}

func TestSweeper_PurgePass_ArchivesBeforeDelete(t *testing.T) {
	ctrl := gomock.NewController(t)

	old := []*models.Message{
		{ID: 1, NegotiationID: 3, Content: "a"},
		{ID: 2, NegotiationID: 3, Content: "b"},
	}

	archiver := &archiverStub{}

	messages := mock.NewMockMessageRepository(ctrl)
	gomock.InOrder(
		messages.EXPECT().
			GetOlderThan(gomock.Any(), gomock.Any(), 0).
			Return(old, nil),
		messages.EXPECT().
			DeleteOlderThan(gomock.Any(), gomock.Any()).
			Return(int64(len(old)), nil),
	)

	sw := New(nil, messages, nil, archiver, Config{MessageRetention: 7 * 24 * time.Hour})

	require.NoError(t, sw.PurgePass(context.Background()))
	require.Len(t, archiver.archived, len(old))
}

func TestSweeper_PurgePass_CustomRetention(t *testing.T) {
	ctrl := gomock.NewController(t)

	messages := mock.NewMockMessageRepository(ctrl)
	messages.EXPECT().
		DeleteOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().Add(-7 * 24 * time.Hour)
			require.WithinDuration(t, expected, cutoff, time.Minute)
			return 0, nil
		})

	sw := New(nil, messages, nil, nil, Config{MessageRetention: 7 * 24 * time.Hour})

	require.NoError(t, sw.PurgePass(context.Background()))
}
