package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const messagesTable = "messages"

type IMessageService interface {
	// LoadConversation returns the messages exchanged between userID and
	// peerID in either direction, oldest first.
	LoadConversation(ctx context.Context, userID, peerID uuid.UUID) ([]domain.Message, error)
	// Send trims content and stores it as a message from sender to receiver.
	// Invalid input is rejected before any store call.
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*domain.Message, error)
}

type MessageService struct {
	log       *slog.Logger
	repo      domain.MessageRepository
	publisher contracts.ChangePublisher
	metrics   *metrics.Metrics
}

// NewMessageService builds the message service. With a nil publisher the
// change feed is expected to be fed from the database instead.
func NewMessageService(
	log *slog.Logger,
	repo domain.MessageRepository,
	publisher contracts.ChangePublisher,
	m *metrics.Metrics,
) *MessageService {
	return &MessageService{
		log:       log,
		repo:      repo,
		publisher: publisher,
		metrics:   m,
	}
}

func (s *MessageService) LoadConversation(ctx context.Context, userID, peerID uuid.UUID) ([]domain.Message, error) {
	ctx, span := tracer.Start(ctx, "MessageService.LoadConversation", trace.WithAttributes(
		attribute.String("user_id", userID.String()),
		attribute.String("peer_id", peerID.String()),
	))
	defer span.End()

	if userID == uuid.Nil {
		return nil, domain.ErrNoCurrentUser
	}
	if peerID == uuid.Nil {
		return nil, domain.ErrNoPeerSelected
	}
	msgs, err := s.repo.ListConversation(ctx, userID, peerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "db read failed")
		s.log.ErrorContext(ctx, "messages - load conversation - list conversation failed", logging.User(userID.String()), logging.Peer(peerID.String()), logging.Err(err))
		return nil, err
	}
	span.SetAttributes(attribute.Int("message_count", len(msgs)))
	s.log.DebugContext(ctx, "messages - load conversation - success", logging.User(userID.String()), logging.Peer(peerID.String()), logging.Count(len(msgs)))
	return msgs, nil
}

func (s *MessageService) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*domain.Message, error) {
	ctx, span := tracer.Start(ctx, "MessageService.Send", trace.WithAttributes(
		attribute.String("sender_id", senderID.String()),
		attribute.String("receiver_id", receiverID.String()),
	))
	defer span.End()

	content = strings.TrimSpace(content)
	switch {
	case content == "":
		return nil, domain.ErrEmptyMessage
	case senderID == uuid.Nil:
		return nil, domain.ErrNoCurrentUser
	case receiverID == uuid.Nil:
		return nil, domain.ErrNoPeerSelected
	}

	msg := domain.NewMessage(senderID, receiverID, content)
	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		s.metrics.MessageFailed()
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		s.log.ErrorContext(ctx, "messages - send - insert message failed", logging.User(senderID.String()), logging.Peer(receiverID.String()), logging.Err(err))
		return nil, err
	}
	s.metrics.MessageSent()
	s.log.InfoContext(ctx, "messages - send - insert message success", logging.Message(msg.ID.String()), logging.User(senderID.String()), logging.Peer(receiverID.String()))

	if s.publisher != nil {
		ev := domain.ChangeEvent{Kind: domain.ChangeInsert, Table: messagesTable, New: msg}
		if err := s.publisher.Publish(ctx, ev); err != nil {
			// the row is committed; subscribers will see it on their next load
			span.RecordError(err)
			s.log.ErrorContext(ctx, "messages - send - publish change failed", logging.Message(msg.ID.String()), logging.Err(err))
		} else {
			s.metrics.FeedEvent(string(domain.ChangeInsert), "published")
		}
	}
	return msg, nil
}
