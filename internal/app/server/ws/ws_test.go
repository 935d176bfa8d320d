package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve upgrades one connection and hands the server side to fn.
func serve(t *testing.T, fn func(*WebSocket)) *websocket.Conn {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		fn(NewWebSocket(context.Background(), conn, slog.New(slog.NewTextHandler(io.Discard, nil))))
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestClientDeliversQueuedFrames(t *testing.T) {
	clients := make(chan *RuntimeClient, 1)
	conn := serve(t, func(w *WebSocket) {
		clients <- NewClient(context.Background(), w, "u1")
	})
	c := <-clients
	defer c.Close()

	assert.Equal(t, "u1", c.UserID())
	assert.NotEmpty(t, c.ID())
	require.NoError(t, c.Send(context.Background(), []byte(`{"type":"sent"}`)))

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"sent"}`, string(data))
}

func TestClientSendAfterClose(t *testing.T) {
	clients := make(chan *RuntimeClient, 1)
	serve(t, func(w *WebSocket) {
		clients <- NewClient(context.Background(), w, "u1")
	})
	c := <-clients
	c.Close()
	c.Close()

	assert.ErrorIs(t, c.Send(context.Background(), []byte("x")), ErrClientClosed)
}

func TestReadLoopForwardsFrames(t *testing.T) {
	got := make(chan string, 2)
	done := make(chan struct{})
	conn := serve(t, func(w *WebSocket) {
		go func() {
			w.ReadLoop(func(b []byte) { got <- string(b) })
			close(done)
		}()
	})

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"select"}`)))
	select {
	case msg := <-got:
		assert.Equal(t, `{"type":"select"}`, msg)
	case <-time.After(time.Second):
		t.Fatal("frame not forwarded")
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("read loop did not exit")
	}
}
