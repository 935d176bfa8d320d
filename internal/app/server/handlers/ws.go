package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/app/chatview"
	"github.com/SHEBN-DEV/Demoshebn/internal/app/registry"
	"github.com/SHEBN-DEV/Demoshebn/internal/app/server/ws"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/logger"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const CodeBadFrame = "bad_frame"

type WSHandler struct {
	hub      *registry.Registry
	messages services.IMessageService
	feed     contracts.ChangeFeed
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
}

func NewWSHandler(
	hub *registry.Registry,
	messages services.IMessageService,
	feed contracts.ChangeFeed,
	m *metrics.Metrics,
) *WSHandler {
	return &WSHandler{
		hub:      hub,
		messages: messages,
		feed:     feed,
		metrics:  m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler upgrades to a chat session. Client frames are select, deselect
// and send; server frames are conversation, message, sent and error.
func (s *WSHandler) Handler(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	span := trace.SpanFromContext(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		log.ErrorContext(r.Context(), "ws handler - unauthorised missing user_id")
		http.Error(w, "Unauthorized: User ID missing", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ErrorContext(r.Context(), "ws handler - upgrade - ws upgrade failed", logging.Err(err))
		return
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	socket := ws.NewWebSocket(ctx, conn, log)
	client := ws.NewClient(ctx, socket, userID.String())
	log = log.With(logging.User(userID.String()), logging.Client(client.ID()))
	ctx = logger.WithContext(ctx, log)
	s.hub.Register(client)
	defer s.hub.Unregister(client)
	defer client.Close()
	log.InfoContext(ctx, "ws handler - register - client added to registry")

	emit := func(frame any) {
		data, err := json.Marshal(frame)
		if err != nil {
			log.Error("ws handler - emit - marshal failed", logging.Err(err))
			return
		}
		if err := client.Send(ctx, data); err != nil {
			log.Warn("ws handler - emit - dropped frame", logging.Err(err))
			if errors.Is(err, ws.ErrSlowClient) {
				go client.Close()
			}
		}
	}
	session := chatview.NewSession(ctx, log, userID, s.messages, s.messages, s.feed, emit, s.metrics)
	defer session.Close()

	socket.ReadLoop(func(data []byte) {
		s.dispatch(ctx, log, session, emit, data)
	})
	log.InfoContext(ctx, "ws handler - read loop - closed")
}

func (s *WSHandler) dispatch(ctx context.Context, log *slog.Logger, session *chatview.Session, emit chatview.Emit, data []byte) {
	var frame domain.ClientFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		reject(emit, "malformed frame")
		return
	}
	switch frame.Type {
	case domain.TypeSelect:
		peerID, err := uuid.Parse(frame.PeerID)
		if err != nil {
			reject(emit, "invalid peer_id")
			return
		}
		// the switch happens in frame order; only the history fetch runs
		// off the read loop
		gen, err := session.Begin(peerID)
		if err != nil {
			if !errors.Is(err, domain.ErrSessionClosed) {
				log.Warn("ws handler - select - failed", logging.Peer(peerID.String()), logging.Err(err))
			}
			return
		}
		go session.Load(ctx, gen)
	case domain.TypeDeselect:
		session.Deselect()
	case domain.TypeSend:
		if _, err := session.Send(ctx, frame.Content); err != nil {
			log.Debug("ws handler - send - not sent", logging.Err(err))
		}
	default:
		reject(emit, "unknown frame type")
	}
}

func reject(emit chatview.Emit, msg string) {
	emit(domain.ErrorMessage{Type: domain.TypeError, Code: CodeBadFrame, Message: msg})
}
