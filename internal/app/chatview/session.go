package chatview

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/google/uuid"
)

// Loader fetches the history of one conversation, oldest first.
type Loader interface {
	LoadConversation(ctx context.Context, userID, peerID uuid.UUID) ([]domain.Message, error)
}

// Sender stores a message from senderID to receiverID.
type Sender interface {
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*domain.Message, error)
}

// Emit pushes a frame to the client. It is called with the session lock
// held, so it must not block or call back into the Session.
type Emit func(frame any)

const (
	CodeLoadFailed      = "load_failed"
	CodeSubscribeFailed = "subscribe_failed"
	CodeSendFailed      = "send_failed"
)

// Session is the chat view of one connected client. It shows a single
// conversation at a time: the history of the selected peer merged with the
// rows pushed by the change feed while that peer stays selected.
type Session struct {
	ctx     context.Context
	log     *slog.Logger
	userID  uuid.UUID
	loader  Loader
	sender  Sender
	feed    contracts.ChangeFeed
	emit    Emit
	metrics *metrics.Metrics

	mu       sync.Mutex
	closed   bool
	peer     uuid.UUID
	gen      uint64
	loading  bool
	messages []domain.Message
	seen     map[uuid.UUID]struct{}
	pending  []domain.Message
	sub      *handle

	// loadFailed keeps later rows out of a list whose history is missing.
	loadFailed bool
}

// NewSession creates the view for userID. ctx bounds the lifetime of the
// feed subscriptions the session opens.
func NewSession(
	ctx context.Context,
	log *slog.Logger,
	userID uuid.UUID,
	loader Loader,
	sender Sender,
	feed contracts.ChangeFeed,
	emit Emit,
	m *metrics.Metrics,
) *Session {
	return &Session{
		ctx:     ctx,
		log:     log.With(logging.User(userID.String())),
		userID:  userID,
		loader:  loader,
		sender:  sender,
		feed:    feed,
		emit:    emit,
		metrics: m,
	}
}

// Select switches the view to peerID and loads its history before
// returning. It is Begin followed by Load.
func (s *Session) Select(ctx context.Context, peerID uuid.UUID) error {
	gen, err := s.Begin(peerID)
	if err != nil {
		return err
	}
	s.Load(ctx, gen)
	return nil
}

// Begin makes peerID the selected peer. The previous list is dropped and
// the previous subscription released before the new one is opened, all
// before Begin returns, so frames handled after it act on peerID. The
// returned generation is handed to Load.
func (s *Session) Begin(peerID uuid.UUID) (uint64, error) {
	if peerID == uuid.Nil {
		return 0, domain.ErrNoPeerSelected
	}
	if s.userID == uuid.Nil {
		return 0, domain.ErrNoCurrentUser
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, domain.ErrSessionClosed
	}
	old := s.sub
	s.sub = nil
	s.gen++
	gen := s.gen
	s.peer = peerID
	s.loading = true
	s.loadFailed = false
	s.messages = nil
	s.seen = nil
	s.pending = nil
	s.mu.Unlock()

	old.release()
	s.subscribe(gen, peerID)
	return gen, nil
}

// Load fetches the history for the selection made by the Begin call that
// returned gen. It does nothing once a later selection replaced it.
func (s *Session) Load(ctx context.Context, gen uint64) {
	s.mu.Lock()
	if s.gen != gen || s.closed {
		s.mu.Unlock()
		return
	}
	peerID := s.peer
	s.mu.Unlock()
	s.load(ctx, gen, peerID)
}

func (s *Session) subscribe(gen uint64, peerID uuid.UUID) {
	sub, err := s.feed.Subscribe(s.ctx, domain.ChangeFilter{Participant: peerID}, func(ev domain.ChangeEvent) {
		s.onChange(gen, ev)
	})
	if err != nil {
		s.log.Error("chatview - select - subscribe failed", logging.Peer(peerID.String()), logging.Err(err))
		s.mu.Lock()
		if s.gen == gen {
			s.emit(domain.ErrorMessage{Type: domain.TypeError, Code: CodeSubscribeFailed, Message: "realtime updates unavailable"})
		}
		s.mu.Unlock()
		return
	}
	h := newHandle(sub, s.log, s.metrics)

	s.mu.Lock()
	if s.gen != gen || s.closed {
		s.mu.Unlock()
		h.release()
		return
	}
	s.sub = h
	s.mu.Unlock()
}

func (s *Session) load(ctx context.Context, gen uint64, peerID uuid.UUID) {
	history, err := s.loader.LoadConversation(ctx, s.userID, peerID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || s.closed {
		s.log.Debug("chatview - select - stale history discarded", logging.Peer(peerID.String()))
		return
	}
	s.loading = false
	if err != nil {
		s.log.Error("chatview - select - load conversation failed", logging.Peer(peerID.String()), logging.Err(err))
		s.pending = nil
		s.loadFailed = true
		s.emit(domain.ErrorMessage{Type: domain.TypeError, Code: CodeLoadFailed, Message: "could not load conversation"})
		return
	}

	s.messages = make([]domain.Message, 0, len(history)+len(s.pending))
	s.seen = make(map[uuid.UUID]struct{}, len(history)+len(s.pending))
	for _, m := range history {
		s.appendLocked(m)
	}
	for _, m := range s.pending {
		s.appendLocked(m)
	}
	s.pending = nil
	s.emit(domain.ConversationSnapshot{
		Type:     domain.TypeConversation,
		PeerID:   peerID.String(),
		Messages: append([]domain.Message(nil), s.messages...),
	})
}

func (s *Session) onChange(gen uint64, ev domain.ChangeEvent) {
	if ev.Kind != domain.ChangeInsert || ev.New == nil {
		s.metrics.FeedEvent(string(ev.Kind), "ignored")
		return
	}
	m := *ev.New

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || s.closed {
		return
	}
	if !(domain.Conversation{UserID: s.userID, PeerID: s.peer}).Contains(m) {
		return
	}
	s.metrics.FeedEvent(string(ev.Kind), "delivered")
	if s.loading {
		s.pending = append(s.pending, m)
		return
	}
	if s.loadFailed {
		return
	}
	if s.appendLocked(m) {
		s.emit(domain.MessageEvent{Type: domain.TypeMessage, Message: m})
	}
}

// appendLocked adds m unless a message with the same id is already shown.
func (s *Session) appendLocked(m domain.Message) bool {
	if s.seen == nil {
		s.seen = make(map[uuid.UUID]struct{})
	}
	if _, dup := s.seen[m.ID]; dup {
		return false
	}
	s.seen[m.ID] = struct{}{}
	s.messages = append(s.messages, m)
	return true
}

// Send stores text for the selected peer. Validation errors are returned
// without any store call. A store failure is reported to the client as an
// error frame; on success a sent frame tells the client to clear its input.
func (s *Session) Send(ctx context.Context, text string) (*domain.Message, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrSessionClosed
	}
	peer, gen := s.peer, s.gen
	s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}
	if peer == uuid.Nil {
		return nil, domain.ErrNoPeerSelected
	}
	msg, err := s.sender.Send(ctx, s.userID, peer, text)
	if err != nil {
		if isValidation(err) {
			return nil, err
		}
		s.log.ErrorContext(ctx, "chatview - send - failed", logging.Peer(peer.String()), logging.Err(err))
		s.mu.Lock()
		s.emit(domain.ErrorMessage{Type: domain.TypeError, Code: CodeSendFailed, Message: "message not sent"})
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit(domain.SentAck{Type: domain.TypeSent, MessageID: msg.ID, Timestamp: time.Now()})
	if s.gen == gen && !s.closed {
		if s.loading {
			s.pending = append(s.pending, *msg)
		} else if !s.loadFailed && s.appendLocked(*msg) {
			s.emit(domain.MessageEvent{Type: domain.TypeMessage, Message: *msg})
		}
	}
	return msg, nil
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrEmptyMessage) ||
		errors.Is(err, domain.ErrNoPeerSelected) ||
		errors.Is(err, domain.ErrNoCurrentUser)
}

// Deselect clears the view and releases the subscription.
func (s *Session) Deselect() {
	s.mu.Lock()
	old := s.reset()
	s.mu.Unlock()
	old.release()
}

// Close releases everything the session holds. Later calls fail with
// domain.ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	old := s.reset()
	s.mu.Unlock()
	old.release()
}

func (s *Session) reset() *handle {
	old := s.sub
	s.sub = nil
	s.gen++
	s.peer = uuid.Nil
	s.loading = false
	s.loadFailed = false
	s.messages = nil
	s.seen = nil
	s.pending = nil
	return old
}

// Peer returns the selected peer, or uuid.Nil.
func (s *Session) Peer() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peer
}

// Messages returns a copy of the displayed list. It is nil while nothing
// is loaded.
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.messages == nil {
		return nil
	}
	return append([]domain.Message(nil), s.messages...)
}

// ActiveSubscriptions is 1 while a peer is selected and the feed accepted
// the subscription, 0 otherwise.
func (s *Session) ActiveSubscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub == nil {
		return 0
	}
	return 1
}
