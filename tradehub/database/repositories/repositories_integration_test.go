//go:build integration

// Race tests for the single-winner accept and the dual-confirm completion.
// They need a real Postgres; point TRADEHUB_TEST_DB_HOST at one and run
// with -tags integration. Every test truncates the tables it touches.
package repositories

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/pockettcg/tradehub/tradehub/database"
	"github.com/pockettcg/tradehub/tradehub/database/models"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()

	host := os.Getenv("TRADEHUB_TEST_DB_HOST")
	if host == "" {
		t.Skip("TRADEHUB_TEST_DB_HOST not set")
	}

	port := 5432
	if v := os.Getenv("TRADEHUB_TEST_DB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		require.NoError(t, err)
		port = p
	}

	cfg := database.DBConfig{
		Host:     host,
		Port:     port,
		User:     envOr("TRADEHUB_TEST_DB_USER", "postgres"),
		Password: envOr("TRADEHUB_TEST_DB_PASSWORD", "postgres"),
		Database: envOr("TRADEHUB_TEST_DB_NAME", "tradehub_test"),
		PoolSize: 10,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.InitializeSchema(ctx))

	for _, table := range []string{"messages", "negotiations", "trade_requests", "trade_posts", "traders"} {
		_, err := db.BunDB().ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// isSerializationFailure detects SQLSTATE 40001, the shape a losing
// serializable transaction can take before it converges on a domain error.
func isSerializationFailure(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "40001"
}

func seedTrader(t *testing.T, db *database.DB, id string) {
	t.Helper()
	trader := &models.Trader{
		ID:         id,
		Username:   id,
		FriendCode: "0000-" + id,
		Status:     models.TraderStatusActive,
	}
	_, err := db.BunDB().NewInsert().Model(trader).Exec(context.Background())
	require.NoError(t, err)
}

func seedActivePost(t *testing.T, db *database.DB, ownerID string) *models.TradePost {
	t.Helper()
	post := &models.TradePost{
		PostID:    "TP" + ownerID,
		OwnerID:   ownerID,
		HaveCards: []string{"pika-d1"},
		WantCards: []string{"bulba-d1"},
		Status:    models.TradePostActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	_, err := db.BunDB().NewInsert().Model(post).Exec(context.Background())
	require.NoError(t, err)
	return post
}

func Test_Integration_Accept_SingleWinner(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	seedTrader(t, db, "host-1")
	seedTrader(t, db, "guest-1")
	seedTrader(t, db, "guest-2")
	post := seedActivePost(t, db, "host-1")

	requests := NewTradeRequestRepository(db.BunDB())

	reqA := &models.TradeRequest{PostID: post.ID, RequesterID: "guest-1", OfferedCardID: "bulba-d1", RequestedCardID: "pika-d1"}
	reqB := &models.TradeRequest{PostID: post.ID, RequesterID: "guest-2", OfferedCardID: "bulba-d1", RequestedCardID: "pika-d1"}
	require.NoError(t, requests.Create(ctx, reqA))
	require.NoError(t, requests.Create(ctx, reqB))

	preview := models.TradePreview{
		HostCard:  models.CardSnapshot{CardID: "pika-d1", Name: "Pikachu", Rarity: "d1"},
		GuestCard: models.CardSnapshot{CardID: "bulba-d1", Name: "Bulbasaur", Rarity: "d1"},
	}

	accept := func(id int64) error {
		for {
			_, err := requests.Accept(ctx, id, preview, "Trade opened")
			if isSerializationFailure(err) {
				continue
			}
			return err
		}
	}

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); errs[0] = accept(reqA.ID) }()
	go func() { defer wg.Done(); errs[1] = accept(reqB.ID) }()
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrPostNotActive)
		}
	}
	require.Equal(t, 1, winners, "exactly one accept must win")

	var gotPost models.TradePost
	require.NoError(t, db.BunDB().NewSelect().Model(&gotPost).Where("id = ?", post.ID).Scan(ctx))
	require.Equal(t, models.TradePostMatched, gotPost.Status)

	count, err := db.BunDB().NewSelect().Model((*models.Negotiation)(nil)).Where("post_id = ?", post.ID).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count, "exactly one negotiation must be spawned")

	accepted, err := db.BunDB().NewSelect().
		Model((*models.TradeRequest)(nil)).
		Where("post_id = ? AND status = ?", post.ID, models.TradeRequestAccepted).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, accepted)
}

func Test_Integration_Cancel_LosesRaceAgainstAccept(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	seedTrader(t, db, "host-1")
	seedTrader(t, db, "guest-1")
	post := seedActivePost(t, db, "host-1")

	requests := NewTradeRequestRepository(db.BunDB())
	posts := NewTradePostRepository(db.BunDB())

	req := &models.TradeRequest{PostID: post.ID, RequesterID: "guest-1", OfferedCardID: "bulba-d1", RequestedCardID: "pika-d1"}
	require.NoError(t, requests.Create(ctx, req))

	_, err := requests.Accept(ctx, req.ID, models.TradePreview{}, "")
	require.NoError(t, err)

	err = posts.Cancel(ctx, post.ID)
	require.ErrorIs(t, err, ErrPostNotActive)

	var gotPost models.TradePost
	require.NoError(t, db.BunDB().NewSelect().Model(&gotPost).Where("id = ?", post.ID).Scan(ctx))
	require.Equal(t, models.TradePostMatched, gotPost.Status, "matched post must keep its status")
}

func Test_Integration_Confirm_AwardsPointsExactlyOnce(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	seedTrader(t, db, "host-1")
	seedTrader(t, db, "guest-1")
	post := seedActivePost(t, db, "host-1")

	req := &models.TradeRequest{
		PostID:          post.ID,
		RequesterID:     "guest-1",
		OfferedCardID:   "bulba-d1",
		RequestedCardID: "pika-d1",
		Status:          models.TradeRequestAccepted,
	}
	_, err := db.BunDB().NewInsert().Model(req).Exec(ctx)
	require.NoError(t, err)

	negotiation := &models.Negotiation{
		PostID:    post.ID,
		RequestID: req.ID,
		HostID:    "host-1",
		GuestID:   "guest-1",
		Status:    models.NegotiationActive,
	}
	_, err = db.BunDB().NewInsert().Model(negotiation).Exec(ctx)
	require.NoError(t, err)

	negotiations := NewNegotiationRepository(db.BunDB())

	confirm := func(traderID string) (bool, error) {
		for {
			completed, err := negotiations.Confirm(ctx, negotiation.ID, traderID)
			if isSerializationFailure(err) {
				continue
			}
			return completed, err
		}
	}

	traderIDs := []string{"host-1", "guest-1"}
	completions := make([]bool, len(traderIDs))
	errs := make([]error, len(traderIDs))
	var wg sync.WaitGroup
	for i, traderID := range traderIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			completions[i], errs[i] = confirm(id)
		}(i, traderID)
	}
	wg.Wait()

	completedCount := 0
	for i := range traderIDs {
		require.NoError(t, errs[i])
		if completions[i] {
			completedCount++
		}
	}
	require.Equal(t, 1, completedCount, "exactly one confirm call completes the trade")

	var gotNegotiation models.Negotiation
	require.NoError(t, db.BunDB().NewSelect().Model(&gotNegotiation).Where("id = ?", negotiation.ID).Scan(ctx))
	require.Equal(t, models.NegotiationCompleted, gotNegotiation.Status)

	// A late confirm against the completed negotiation must not award again.
	_, err = negotiations.Confirm(ctx, negotiation.ID, "host-1")
	require.ErrorIs(t, err, ErrNegotiationNotActive)

	for _, traderID := range []string{"host-1", "guest-1"} {
		var trader models.Trader
		require.NoError(t, db.BunDB().NewSelect().Model(&trader).Where("id = ?", traderID).Scan(ctx))
		require.EqualValues(t, 1, trader.TradePoint, "trader %s must be awarded exactly one point", traderID)
	}
}
