package trading

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
	"github.com/pockettcg/tradehub/tradehub/database/repositories/mock"
)

func activePost() *models.TradePost {
	return &models.TradePost{
		ID:        10,
		PostID:    "TP000001",
		OwnerID:   "host-1",
		HaveCards: []string{"pika-d1", "char-d1"},
		WantCards: []string{"bulba-d1"},
		Status:    models.TradePostActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func Test_OfferMatcher_Submit_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(post *models.TradePost)
		requesterID string
		offered     string
		requested   string
		wantKind    Kind
	}{
		{
			name:        "OwnSelfTrade",
			requesterID: "host-1",
			offered:     "bulba-d1",
			requested:   "pika-d1",
			wantKind:    KindValidation,
		},
		{
			name:        "PostNotActive",
			mutate:      func(post *models.TradePost) { post.Status = models.TradePostMatched },
			requesterID: "guest-1",
			offered:     "bulba-d1",
			requested:   "pika-d1",
			wantKind:    KindValidation,
		},
		{
			name: "PostExpiredBeforeSweep",
			mutate: func(post *models.TradePost) {
				post.ExpiresAt = time.Now().Add(-time.Minute)
			},
			requesterID: "guest-1",
			offered:     "bulba-d1",
			requested:   "pika-d1",
			wantKind:    KindValidation,
		},
		{
			name:        "RequestedCardNotOnPost",
			requesterID: "guest-1",
			offered:     "bulba-d1",
			requested:   "mew-d3",
			wantKind:    KindValidation,
		},
		{
			name:        "OfferedCardUnknown",
			requesterID: "guest-1",
			offered:     "no-such-card",
			requested:   "pika-d1",
			wantKind:    KindValidation,
		},
		{
			name:        "RarityClassMismatch",
			requesterID: "guest-1",
			offered:     "mew-d3",
			requested:   "pika-d1",
			wantKind:    KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			post := activePost()
			if tt.mutate != nil {
				tt.mutate(post)
			}

			posts := mock.NewMockTradePostRepository(ctrl)
			posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

			matcher := NewOfferMatcher(posts, nil, nil, nil, testCatalog)

			_, err := matcher.Submit(context.Background(), post.ID,
				tt.requesterID, tt.offered, tt.requested, "")
			if err == nil {
				t.Fatal("Submit() expected error, got nil")
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("Submit() error kind = %q, want %q", got, tt.wantKind)
			}
		})
	}
}

func Test_OfferMatcher_Submit_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)

	post := activePost()

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil).AnyTimes()

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().
		CountCreatedSince(gomock.Any(), "guest-1", gomock.Any()).
		Return(models.DefaultLimitRequestPerTraderPerDay, nil)

	limiter := NewRateLimiter(posts, requests, settings)
	matcher := NewOfferMatcher(posts, requests, settings, limiter, testCatalog)

	_, err := matcher.Submit(context.Background(), post.ID, "guest-1", "bulba-d1", "pika-d1", "")
	if !IsKind(err, KindRateLimit) {
		t.Errorf("Submit() error = %v, want rate limit error", err)
	}
}

func Test_OfferMatcher_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	post := activePost()

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil).AnyTimes()

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().
		CountCreatedSince(gomock.Any(), "guest-1", gomock.Any()).
		Return(0, nil)
	requests.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	limiter := NewRateLimiter(posts, requests, settings)
	matcher := NewOfferMatcher(posts, requests, settings, limiter, testCatalog)

	request, err := matcher.Submit(context.Background(), post.ID,
		"guest-1", "bulba-d1", "pika-d1", "trade me please")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if request.PostID != post.ID {
		t.Errorf("Submit() post ID = %d, want %d", request.PostID, post.ID)
	}
	if request.RequesterID != "guest-1" {
		t.Errorf("Submit() requester = %q, want %q", request.RequesterID, "guest-1")
	}
}

func Test_OfferMatcher_Decline_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	post := activePost()
	request := &models.TradeRequest{ID: 7, PostID: post.ID, RequesterID: "guest-1"}

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().GetByID(gomock.Any(), request.ID).Return(request, nil)

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

	matcher := NewOfferMatcher(posts, requests, nil, nil, testCatalog)

	err := matcher.Decline(context.Background(), request.ID, "guest-1")
	if !IsKind(err, KindAuthorization) {
		t.Errorf("Decline() error = %v, want authorization error", err)
	}
}

func Test_OfferMatcher_Decline_AlreadyAnswered(t *testing.T) {
	ctrl := gomock.NewController(t)

	post := activePost()
	request := &models.TradeRequest{ID: 7, PostID: post.ID, RequesterID: "guest-1"}

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().GetByID(gomock.Any(), request.ID).Return(request, nil)
	requests.EXPECT().Decline(gomock.Any(), request.ID).Return(repositories.ErrRequestNotPending)

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

	matcher := NewOfferMatcher(posts, requests, nil, nil, testCatalog)

	err := matcher.Decline(context.Background(), request.ID, "host-1")
	if !IsKind(err, KindState) {
		t.Errorf("Decline() error = %v, want state error", err)
	}
}

func Test_OfferMatcher_Accept_SingleWinnerRaceLost(t *testing.T) {
	ctrl := gomock.NewController(t)

	post := activePost()
	request := &models.TradeRequest{
		ID:              7,
		PostID:          post.ID,
		RequesterID:     "guest-1",
		OfferedCardID:   "bulba-d1",
		RequestedCardID: "pika-d1",
	}

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().GetByID(gomock.Any(), request.ID).Return(request, nil)
	requests.EXPECT().
		Accept(gomock.Any(), request.ID, gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrPostNotActive)

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

	matcher := NewOfferMatcher(posts, requests, nil, nil, testCatalog)

	_, err := matcher.Accept(context.Background(), request.ID, "host-1")
	if !IsKind(err, KindState) {
		t.Errorf("Accept() error = %v, want state error", err)
	}
}

func Test_OfferMatcher_Accept_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	post := activePost()
	request := &models.TradeRequest{
		ID:              7,
		PostID:          post.ID,
		RequesterID:     "guest-1",
		OfferedCardID:   "bulba-d1",
		RequestedCardID: "pika-d1",
	}

	requests := mock.NewMockTradeRequestRepository(ctrl)
	requests.EXPECT().GetByID(gomock.Any(), request.ID).Return(request, nil)
	requests.EXPECT().
		Accept(gomock.Any(), request.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, preview models.TradePreview, opener string) (*models.Negotiation, error) {
			if preview.HostCard.CardID != "pika-d1" {
				t.Errorf("Accept() host preview card = %q, want %q", preview.HostCard.CardID, "pika-d1")
			}
			if preview.GuestCard.CardID != "bulba-d1" {
				t.Errorf("Accept() guest preview card = %q, want %q", preview.GuestCard.CardID, "bulba-d1")
			}
			if opener == "" {
				t.Error("Accept() expected a non-empty opener message")
			}
			return &models.Negotiation{
				ID:      1,
				PostID:  post.ID,
				HostID:  "host-1",
				GuestID: "guest-1",
				Status:  models.NegotiationActive,
				Preview: preview,
			}, nil
		})

	posts := mock.NewMockTradePostRepository(ctrl)
	posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)

	matcher := NewOfferMatcher(posts, requests, nil, nil, testCatalog)

	negotiation, err := matcher.Accept(context.Background(), request.ID, "host-1")
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if negotiation.Status != models.NegotiationActive {
		t.Errorf("Accept() negotiation status = %q, want %q", negotiation.Status, models.NegotiationActive)
	}
	if !negotiation.Participant("guest-1") || !negotiation.Participant("host-1") {
		t.Error("Accept() negotiation must include both parties")
	}
}
