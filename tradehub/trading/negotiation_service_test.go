package trading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
	"github.com/pockettcg/tradehub/tradehub/database/repositories/mock"
)

func activeNegotiation() *models.Negotiation {
	return &models.Negotiation{
		ID:      3,
		PostID:  10,
		HostID:  "host-1",
		GuestID: "guest-1",
		Status:  models.NegotiationActive,
	}
}

func Test_NegotiationService_Send(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(n *models.Negotiation)
		senderID    string
		content     string
		contentType models.MessageContentType
		wantKind    Kind
		wantCreate  bool
	}{
		{
			name:        "Success",
			senderID:    "host-1",
			content:     "deal?",
			contentType: models.MessageContentText,
			wantCreate:  true,
		},
		{
			name:        "NotParticipant",
			senderID:    "stranger",
			content:     "hi",
			contentType: models.MessageContentText,
			wantKind:    KindAuthorization,
		},
		{
			name:        "CompletedNegotiation",
			mutate:      func(n *models.Negotiation) { n.Status = models.NegotiationCompleted },
			senderID:    "host-1",
			content:     "deal?",
			contentType: models.MessageContentText,
			wantKind:    KindState,
		},
		{
			name:        "EmptyContent",
			senderID:    "guest-1",
			content:     "",
			contentType: models.MessageContentText,
			wantKind:    KindValidation,
		},
		{
			name:        "ContentTooLong",
			senderID:    "guest-1",
			content:     strings.Repeat("x", maxMessageLength+1),
			contentType: models.MessageContentText,
			wantKind:    KindValidation,
		},
		{
			name:        "UnknownContentType",
			senderID:    "guest-1",
			content:     "hi",
			contentType: "video",
			wantKind:    KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			negotiation := activeNegotiation()
			if tt.mutate != nil {
				tt.mutate(negotiation)
			}

			negotiations := mock.NewMockNegotiationRepository(ctrl)
			negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

			messages := mock.NewMockMessageRepository(ctrl)
			if tt.wantCreate {
				messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			service := NewNegotiationService(negotiations, messages, nil)

			message, err := service.Send(context.Background(), negotiation.ID,
				tt.senderID, tt.content, tt.contentType)

			if tt.wantCreate {
				if err != nil {
					t.Fatalf("Send() error = %v", err)
				}
				if message.SenderID != tt.senderID {
					t.Errorf("Send() sender = %q, want %q", message.SenderID, tt.senderID)
				}
				return
			}

			if err == nil {
				t.Fatal("Send() expected error, got nil")
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("Send() error kind = %q, want %q", got, tt.wantKind)
			}
		})
	}
}

func Test_NegotiationService_SendImage_Disabled(t *testing.T) {
	service := NewNegotiationService(nil, nil, nil)

	_, err := service.SendImage(context.Background(), 3, "host-1", "image/png", []byte{1})
	if !IsKind(err, KindValidation) {
		t.Errorf("SendImage() error = %v, want validation error", err)
	}
}

// attachmentStub records store traffic so tests can assert nothing was
// uploaded for rejected callers and failed sends get cleaned up.
type attachmentStub struct {
	url     string
	uploads int
	deletes int
}

func (a *attachmentStub) UploadAttachment(context.Context, string, string, []byte) (string, error) {
	a.uploads++
	return a.url, nil
}

func (a *attachmentStub) DeleteAttachment(context.Context, string) error {
	a.deletes++
	return nil
}

func Test_NegotiationService_SendImage_RecordsURL(t *testing.T) {
	ctrl := gomock.NewController(t)

	negotiation := activeNegotiation()

	negotiations := mock.NewMockNegotiationRepository(ctrl)
	negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

	messages := mock.NewMockMessageRepository(ctrl)
	messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message *models.Message) error {
			if message.ContentType != models.MessageContentImage {
				t.Errorf("Create() content type = %q, want %q", message.ContentType, models.MessageContentImage)
			}
			if message.Content != "https://cdn.example.com/att.png" {
				t.Errorf("Create() content = %q, want attachment URL", message.Content)
			}
			return nil
		})

	service := NewNegotiationService(negotiations, messages,
		&attachmentStub{url: "https://cdn.example.com/att.png"})

	_, err := service.SendImage(context.Background(), negotiation.ID, "guest-1", "image/png", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("SendImage() error = %v", err)
	}
}

func Test_NegotiationService_SendImage_GuardsBeforeUpload(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(n *models.Negotiation)
		senderID string
		wantKind Kind
	}{
		{
			name:     "NotParticipant",
			senderID: "stranger",
			wantKind: KindAuthorization,
		},
		{
			name:     "CompletedNegotiation",
			mutate:   func(n *models.Negotiation) { n.Status = models.NegotiationCompleted },
			senderID: "host-1",
			wantKind: KindState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			negotiation := activeNegotiation()
			if tt.mutate != nil {
				tt.mutate(negotiation)
			}

			negotiations := mock.NewMockNegotiationRepository(ctrl)
			negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

			store := &attachmentStub{url: "https://cdn.example.com/att.png"}
			service := NewNegotiationService(negotiations, mock.NewMockMessageRepository(ctrl), store)

			_, err := service.SendImage(context.Background(), negotiation.ID,
				tt.senderID, "image/png", []byte{1})
			if got := KindOf(err); got != tt.wantKind {
				t.Fatalf("SendImage() error kind = %q, want %q", got, tt.wantKind)
			}
			if store.uploads != 0 {
				t.Errorf("SendImage() uploaded %d objects for a rejected caller, want 0", store.uploads)
			}
		})
	}
}

func Test_NegotiationService_SendImage_CleansUpOnFailedInsert(t *testing.T) {
	ctrl := gomock.NewController(t)

	negotiation := activeNegotiation()

	negotiations := mock.NewMockNegotiationRepository(ctrl)
	negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

	messages := mock.NewMockMessageRepository(ctrl)
	messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	store := &attachmentStub{url: "https://cdn.example.com/att.png"}
	service := NewNegotiationService(negotiations, messages, store)

	_, err := service.SendImage(context.Background(), negotiation.ID, "host-1", "image/png", []byte{1})
	if err == nil {
		t.Fatal("SendImage() expected error, got nil")
	}
	if store.uploads != 1 {
		t.Errorf("SendImage() uploads = %d, want 1", store.uploads)
	}
	if store.deletes != 1 {
		t.Errorf("SendImage() deletes = %d, want the orphaned object removed", store.deletes)
	}
}

func Test_NegotiationService_MarkRead_QuietNoOps(t *testing.T) {
	t.Run("UnknownNegotiation", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, repositories.ErrNotFound)

		service := NewNegotiationService(negotiations, mock.NewMockMessageRepository(ctrl), nil)

		if err := service.MarkRead(context.Background(), 99, "host-1"); err != nil {
			t.Errorf("MarkRead() error = %v, want nil", err)
		}
	})

	t.Run("NonParticipant", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiation := activeNegotiation()
		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

		service := NewNegotiationService(negotiations, mock.NewMockMessageRepository(ctrl), nil)

		if err := service.MarkRead(context.Background(), negotiation.ID, "stranger"); err != nil {
			t.Errorf("MarkRead() error = %v, want nil", err)
		}
	})
}

func Test_NegotiationService_UnreadCount(t *testing.T) {
	t.Run("ParticipantGetsCount", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiation := activeNegotiation()
		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

		messages := mock.NewMockMessageRepository(ctrl)
		messages.EXPECT().UnreadCount(gomock.Any(), negotiation.ID, "host-1").Return(2, nil)

		service := NewNegotiationService(negotiations, messages, nil)

		count, err := service.UnreadCount(context.Background(), negotiation.ID, "host-1")
		if err != nil {
			t.Fatalf("UnreadCount() error = %v", err)
		}
		if count != 2 {
			t.Errorf("UnreadCount() = %d, want 2", count)
		}
	})

	t.Run("NonParticipantForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiation := activeNegotiation()
		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().GetByID(gomock.Any(), negotiation.ID).Return(negotiation, nil)

		service := NewNegotiationService(negotiations, mock.NewMockMessageRepository(ctrl), nil)

		_, err := service.UnreadCount(context.Background(), negotiation.ID, "stranger")
		if !IsKind(err, KindAuthorization) {
			t.Errorf("UnreadCount() error = %v, want authorization error", err)
		}
	})
}

func Test_NegotiationService_Confirm(t *testing.T) {
	t.Run("FirstConfirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().Confirm(gomock.Any(), int64(3), "host-1").Return(false, nil)

		service := NewNegotiationService(negotiations, nil, nil)

		completed, err := service.Confirm(context.Background(), 3, "host-1")
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if completed {
			t.Error("Confirm() = completed, want pending second confirmation")
		}
	})

	t.Run("SecondConfirmationCompletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().Confirm(gomock.Any(), int64(3), "guest-1").Return(true, nil)

		service := NewNegotiationService(negotiations, nil, nil)

		completed, err := service.Confirm(context.Background(), 3, "guest-1")
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if !completed {
			t.Error("Confirm() = pending, want completed")
		}
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().
			Confirm(gomock.Any(), int64(3), "host-1").
			Return(false, repositories.ErrNegotiationNotActive)

		service := NewNegotiationService(negotiations, nil, nil)

		_, err := service.Confirm(context.Background(), 3, "host-1")
		if !IsKind(err, KindState) {
			t.Errorf("Confirm() error = %v, want state error", err)
		}
	})

	t.Run("NonParticipant", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		negotiations := mock.NewMockNegotiationRepository(ctrl)
		negotiations.EXPECT().
			Confirm(gomock.Any(), int64(3), "stranger").
			Return(false, repositories.ErrNotParticipant)

		service := NewNegotiationService(negotiations, nil, nil)

		_, err := service.Confirm(context.Background(), 3, "stranger")
		if !IsKind(err, KindAuthorization) {
			t.Errorf("Confirm() error = %v, want authorization error", err)
		}
	})
}

func Test_NegotiationService_Cancel_Terminal(t *testing.T) {
	ctrl := gomock.NewController(t)

	negotiations := mock.NewMockNegotiationRepository(ctrl)
	negotiations.EXPECT().
		Cancel(gomock.Any(), int64(3), "guest-1").
		Return(repositories.ErrNegotiationNotActive)

	service := NewNegotiationService(negotiations, nil, nil)

	err := service.Cancel(context.Background(), 3, "guest-1")
	if !IsKind(err, KindState) {
		t.Errorf("Cancel() error = %v, want state error", err)
	}
}
