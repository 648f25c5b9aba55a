package trading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
)

const maxMessageLength = 1000

// AttachmentStore persists image payloads and returns a public URL. The
// Spaces service implements it; tests stub it.
type AttachmentStore interface {
	UploadAttachment(ctx context.Context, key, mimeType string, data []byte) (string, error)
	DeleteAttachment(ctx context.Context, key string) error
}

// NegotiationService drives the two-party chat and confirmation state
// machine spawned by an accepted trade request. Completion and the trade
// point award happen atomically in the repository; this layer holds the
// participant and state guards.
type NegotiationService struct {
	negotiations repositories.NegotiationRepository
	messages     repositories.MessageRepository
	attachments  AttachmentStore
}

func NewNegotiationService(
	negotiations repositories.NegotiationRepository,
	messages repositories.MessageRepository,
	attachments AttachmentStore,
) *NegotiationService {
	return &NegotiationService{
		negotiations: negotiations,
		messages:     messages,
		attachments:  attachments,
	}
}

func (s *NegotiationService) GetByID(ctx context.Context, id int64, traderID string) (*models.Negotiation, error) {
	negotiation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !negotiation.Participant(traderID) {
		return nil, authorizationError("not a participant of this negotiation")
	}
	return negotiation, nil
}

func (s *NegotiationService) ListForTrader(ctx context.Context, traderID string) ([]*models.Negotiation, error) {
	return s.negotiations.GetByTrader(ctx, traderID)
}

// Send appends a message to an active negotiation.
func (s *NegotiationService) Send(ctx context.Context, negotiationID int64, senderID, content string, contentType models.MessageContentType) (*models.Message, error) {
	negotiation, err := s.load(ctx, negotiationID)
	if err != nil {
		return nil, err
	}

	if negotiation.Status != models.NegotiationActive {
		return nil, stateError("negotiation is no longer active")
	}
	if !negotiation.Participant(senderID) {
		return nil, authorizationError("not a participant of this negotiation")
	}
	if contentType != models.MessageContentText && contentType != models.MessageContentImage {
		return nil, validationError("unsupported content type %q", contentType)
	}
	if content == "" {
		return nil, validationError("message content must not be empty")
	}
	if contentType == models.MessageContentText && len([]rune(content)) > maxMessageLength {
		return nil, validationError("message may be at most %d characters", maxMessageLength)
	}

	message := &models.Message{
		NegotiationID: negotiation.ID,
		SenderID:      senderID,
		Content:       content,
		ContentType:   contentType,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// SendImage uploads the payload to the attachment store and records the
// resulting URL as an image message. The participant and status guards run
// before the upload so rejected callers never leave an object behind.
func (s *NegotiationService) SendImage(ctx context.Context, negotiationID int64, senderID, mimeType string, data []byte) (*models.Message, error) {
	if s.attachments == nil {
		return nil, validationError("image attachments are not enabled")
	}
	if len(data) == 0 {
		return nil, validationError("image payload must not be empty")
	}

	negotiation, err := s.load(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if negotiation.Status != models.NegotiationActive {
		return nil, stateError("negotiation is no longer active")
	}
	if !negotiation.Participant(senderID) {
		return nil, authorizationError("not a participant of this negotiation")
	}

	key := fmt.Sprintf("negotiations/%d/%s", negotiationID, uuid.NewString())
	url, err := s.attachments.UploadAttachment(ctx, key, mimeType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	message := &models.Message{
		NegotiationID: negotiation.ID,
		SenderID:      senderID,
		Content:       url,
		ContentType:   models.MessageContentImage,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		if delErr := s.attachments.DeleteAttachment(ctx, key); delErr != nil {
			slog.Warn("Orphaned attachment left in store",
				slog.String("key", key),
				slog.Any("error", delErr))
		}
		return nil, err
	}
	return message, nil
}

func (s *NegotiationService) Messages(ctx context.Context, negotiationID int64, traderID string) ([]*models.Message, error) {
	negotiation, err := s.load(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if !negotiation.Participant(traderID) {
		return nil, authorizationError("not a participant of this negotiation")
	}
	return s.messages.GetByNegotiation(ctx, negotiation.ID)
}

// MarkRead flips everything the other side sent. Calls from non-participants
// and calls against unknown negotiations are quiet no-ops; there is nothing
// useful to tell the caller.
func (s *NegotiationService) MarkRead(ctx context.Context, negotiationID int64, readerID string) error {
	negotiation, err := s.negotiations.GetByID(ctx, negotiationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	if !negotiation.Participant(readerID) {
		return nil
	}
	return s.messages.MarkRead(ctx, negotiation.ID, readerID)
}

func (s *NegotiationService) UnreadCount(ctx context.Context, negotiationID int64, readerID string) (int, error) {
	negotiation, err := s.load(ctx, negotiationID)
	if err != nil {
		return 0, err
	}
	if !negotiation.Participant(readerID) {
		return 0, authorizationError("not a participant of this negotiation")
	}
	return s.messages.UnreadCount(ctx, negotiation.ID, readerID)
}

// Confirm records the caller's confirmation. The returned bool reports
// whether this call completed the negotiation; the repository guarantees
// the completion transition and the point award fire at most once even
// when both sides confirm at nearly the same moment.
func (s *NegotiationService) Confirm(ctx context.Context, negotiationID int64, traderID string) (bool, error) {
	completed, err := s.negotiations.Confirm(ctx, negotiationID, traderID)
	if err != nil {
		return false, s.mapStateErr(err, negotiationID)
	}

	if completed {
		slog.Info("Trade completed, points awarded",
			slog.Int64("negotiation_id", negotiationID))
	}
	return completed, nil
}

// Unconfirm clears the caller's flag; already-granted rewards are never
// revoked because completion is terminal.
func (s *NegotiationService) Unconfirm(ctx context.Context, negotiationID int64, traderID string) error {
	if err := s.negotiations.Unconfirm(ctx, negotiationID, traderID); err != nil {
		return s.mapStateErr(err, negotiationID)
	}
	return nil
}

// Cancel is terminal and records who pulled out. The originating post stays
// matched; reopening it is a moderation decision, not an automatic one.
func (s *NegotiationService) Cancel(ctx context.Context, negotiationID int64, traderID string) error {
	if err := s.negotiations.Cancel(ctx, negotiationID, traderID); err != nil {
		return s.mapStateErr(err, negotiationID)
	}
	return nil
}

func (s *NegotiationService) load(ctx context.Context, id int64) (*models.Negotiation, error) {
	negotiation, err := s.negotiations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundError("negotiation %d not found", id)
		}
		return nil, err
	}
	return negotiation, nil
}

func (s *NegotiationService) mapStateErr(err error, id int64) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return notFoundError("negotiation %d not found", id)
	case errors.Is(err, repositories.ErrNegotiationNotActive):
		return stateError("negotiation is no longer active")
	case errors.Is(err, repositories.ErrNotParticipant):
		return authorizationError("not a participant of this negotiation")
	}
	return err
}
