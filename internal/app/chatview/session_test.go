package chatview

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFeed delivers published events synchronously to matching subscribers.
type memFeed struct {
	mu   sync.Mutex
	next int
	subs map[int]memSub
	fail error
}

type memSub struct {
	filter  domain.ChangeFilter
	handler func(domain.ChangeEvent)
}

type memSubscription struct {
	feed *memFeed
	id   int
}

func (s *memSubscription) Unsubscribe() error {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	delete(s.feed.subs, s.id)
	return nil
}

func newMemFeed() *memFeed {
	return &memFeed{subs: make(map[int]memSub)}
}

func (f *memFeed) Subscribe(_ context.Context, filter domain.ChangeFilter, handler func(domain.ChangeEvent)) (contracts.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	f.next++
	f.subs[f.next] = memSub{filter: filter, handler: handler}
	return &memSubscription{feed: f, id: f.next}, nil
}

func (f *memFeed) Publish(_ context.Context, ev domain.ChangeEvent) error {
	f.mu.Lock()
	var targets []func(domain.ChangeEvent)
	for _, s := range f.subs {
		if s.filter.Matches(ev) {
			targets = append(targets, s.handler)
		}
	}
	f.mu.Unlock()
	for _, h := range targets {
		h(ev)
	}
	return nil
}

func (f *memFeed) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *memFeed) insert(m domain.Message) {
	_ = f.Publish(context.Background(), domain.ChangeEvent{Kind: domain.ChangeInsert, Table: "messages", New: &m})
}

// memStore serves history by peer and records sends.
type memStore struct {
	mu      sync.Mutex
	history map[uuid.UUID][]domain.Message
	gates   map[uuid.UUID]chan struct{}
	entered chan uuid.UUID
	loadErr error
	sendErr error
	sends   int
}

func newMemStore() *memStore {
	return &memStore{
		history: make(map[uuid.UUID][]domain.Message),
		gates:   make(map[uuid.UUID]chan struct{}),
		entered: make(chan uuid.UUID, 8),
	}
}

// block makes loads for peer wait until the returned func is called.
func (s *memStore) block(peer uuid.UUID) func() {
	ch := make(chan struct{})
	s.mu.Lock()
	s.gates[peer] = ch
	s.mu.Unlock()
	return func() { close(ch) }
}

func (s *memStore) LoadConversation(_ context.Context, _, peer uuid.UUID) ([]domain.Message, error) {
	s.mu.Lock()
	gate := s.gates[peer]
	s.mu.Unlock()
	if gate != nil {
		s.entered <- peer
		<-gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]domain.Message{}, s.history[peer]...), nil
}

func (s *memStore) Send(_ context.Context, sender, receiver uuid.UUID, content string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sends++
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return domain.NewMessage(sender, receiver, content), nil
}

type recorder struct {
	frames []any
}

func (r *recorder) emit(f any) { r.frames = append(r.frames, f) }

func (r *recorder) last() any {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

type fixture struct {
	me      uuid.UUID
	feed    *memFeed
	store   *memStore
	rec     *recorder
	session *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		me:    uuid.New(),
		feed:  newMemFeed(),
		store: newMemStore(),
		rec:   &recorder{},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.session = NewSession(context.Background(), log, f.me, f.store, f.store, f.feed, f.rec.emit, nil)
	t.Cleanup(f.session.Close)
	return f
}

func msgAt(from, to uuid.UUID, content string, at time.Time) domain.Message {
	m := domain.NewMessage(from, to, content)
	m.CreatedAt = at
	return *m
}

func TestSelectShowsOnlyConversationPair(t *testing.T) {
	f := newFixture(t)
	peer, other := uuid.New(), uuid.New()
	now := time.Now()
	f.store.history[peer] = []domain.Message{
		msgAt(f.me, peer, "hi", now),
		msgAt(peer, f.me, "hello", now.Add(time.Second)),
	}

	require.NoError(t, f.session.Select(context.Background(), peer))
	// matches the feed filter (receiver = peer) but belongs to another pair
	f.feed.insert(msgAt(other, peer, "not for you", now.Add(2*time.Second)))
	f.feed.insert(msgAt(peer, f.me, "new", now.Add(3*time.Second)))

	got := f.session.Messages()
	require.Len(t, got, 3)
	conv := domain.Conversation{UserID: f.me, PeerID: peer}
	for _, m := range got {
		assert.True(t, conv.Contains(m), m.Content)
	}
	assert.Equal(t, "new", got[2].Content)
}

func TestSwitchingPeerReplacesList(t *testing.T) {
	f := newFixture(t)
	a, b := uuid.New(), uuid.New()
	f.store.history[a] = []domain.Message{msgAt(a, f.me, "from a", time.Now())}
	f.store.history[b] = []domain.Message{msgAt(b, f.me, "from b", time.Now())}

	require.NoError(t, f.session.Select(context.Background(), a))
	f.feed.insert(msgAt(a, f.me, "a again", time.Now()))
	require.Len(t, f.session.Messages(), 2)

	require.NoError(t, f.session.Select(context.Background(), b))
	f.feed.insert(msgAt(a, f.me, "late a", time.Now()))

	got := f.session.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, "from b", got[0].Content)

	snap, ok := f.rec.last().(domain.ConversationSnapshot)
	require.True(t, ok)
	assert.Equal(t, b.String(), snap.PeerID)
}

func TestExactlyOneSubscriptionWhileSelected(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 0, f.feed.live())

	require.NoError(t, f.session.Select(context.Background(), uuid.New()))
	assert.Equal(t, 1, f.feed.live())
	assert.Equal(t, 1, f.session.ActiveSubscriptions())

	require.NoError(t, f.session.Select(context.Background(), uuid.New()))
	assert.Equal(t, 1, f.feed.live())

	f.session.Deselect()
	assert.Equal(t, 0, f.feed.live())
	assert.Equal(t, 0, f.session.ActiveSubscriptions())
	assert.Nil(t, f.session.Messages())

	require.NoError(t, f.session.Select(context.Background(), uuid.New()))
	f.session.Close()
	assert.Equal(t, 0, f.feed.live())
	assert.ErrorIs(t, f.session.Select(context.Background(), uuid.New()), domain.ErrSessionClosed)
}

func TestStaleHistoryIsDiscarded(t *testing.T) {
	f := newFixture(t)
	a, b := uuid.New(), uuid.New()
	f.store.history[a] = []domain.Message{msgAt(a, f.me, "from a", time.Now())}
	f.store.history[b] = []domain.Message{msgAt(b, f.me, "from b", time.Now())}
	release := f.store.block(a)

	done := make(chan error)
	go func() { done <- f.session.Select(context.Background(), a) }()
	<-f.store.entered

	require.NoError(t, f.session.Select(context.Background(), b))
	release()
	require.NoError(t, <-done)

	got := f.session.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, "from b", got[0].Content)
	assert.Equal(t, b, f.session.Peer())
	assert.Equal(t, 1, f.feed.live())
}

func TestRowsPushedDuringLoadAreMergedOnce(t *testing.T) {
	f := newFixture(t)
	peer := uuid.New()
	now := time.Now()
	m0 := msgAt(peer, f.me, "m0", now)
	m1 := msgAt(f.me, peer, "m1", now.Add(time.Second))
	m2 := msgAt(peer, f.me, "m2", now.Add(2*time.Second))
	f.store.history[peer] = []domain.Message{m0, m1}
	release := f.store.block(peer)

	done := make(chan error)
	go func() { done <- f.session.Select(context.Background(), peer) }()
	<-f.store.entered

	// m1 raced the history query and is pushed as well
	f.feed.insert(m1)
	f.feed.insert(m2)
	release()
	require.NoError(t, <-done)

	got := f.session.Messages()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"m0", "m1", "m2"}, []string{got[0].Content, got[1].Content, got[2].Content})

	f.feed.insert(m2)
	assert.Len(t, f.session.Messages(), 3)
}

func TestNonInsertEventsIgnored(t *testing.T) {
	f := newFixture(t)
	peer := uuid.New()
	require.NoError(t, f.session.Select(context.Background(), peer))

	m := msgAt(peer, f.me, "edited", time.Now())
	_ = f.feed.Publish(context.Background(), domain.ChangeEvent{Kind: domain.ChangeUpdate, New: &m})
	_ = f.feed.Publish(context.Background(), domain.ChangeEvent{Kind: domain.ChangeDelete, Old: &m})

	assert.Empty(t, f.session.Messages())
}

func TestLoadFailureLeavesListUnset(t *testing.T) {
	f := newFixture(t)
	f.store.loadErr = errors.New("db down")

	require.NoError(t, f.session.Select(context.Background(), uuid.New()))
	assert.Nil(t, f.session.Messages())

	frame, ok := f.rec.last().(domain.ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, CodeLoadFailed, frame.Code)
}

func TestSubscribeFailureStillLoadsHistory(t *testing.T) {
	f := newFixture(t)
	peer := uuid.New()
	f.store.history[peer] = []domain.Message{msgAt(peer, f.me, "hi", time.Now())}
	f.feed.fail = errors.New("redis down")

	require.NoError(t, f.session.Select(context.Background(), peer))
	assert.Len(t, f.session.Messages(), 1)
	assert.Equal(t, 0, f.session.ActiveSubscriptions())

	frame, ok := f.rec.frames[0].(domain.ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, CodeSubscribeFailed, frame.Code)
}

func TestSendValidationNeverReachesStore(t *testing.T) {
	f := newFixture(t)

	_, err := f.session.Send(context.Background(), "hi")
	assert.ErrorIs(t, err, domain.ErrNoPeerSelected)

	require.NoError(t, f.session.Select(context.Background(), uuid.New()))
	_, err = f.session.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Zero(t, f.store.sends)
}

func TestSendSuccessAppendsOnce(t *testing.T) {
	f := newFixture(t)
	peer := uuid.New()
	require.NoError(t, f.session.Select(context.Background(), peer))

	msg, err := f.session.Send(context.Background(), "hola")
	require.NoError(t, err)

	var sawSent bool
	for _, fr := range f.rec.frames {
		if ack, ok := fr.(domain.SentAck); ok {
			sawSent = true
			assert.Equal(t, msg.ID, ack.MessageID)
		}
	}
	assert.True(t, sawSent)

	// realtime echo of the same row
	f.feed.insert(*msg)
	got := f.session.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, "hola", got[0].Content)
}

func TestSendFailureIsVisible(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Select(context.Background(), uuid.New()))
	f.store.sendErr = errors.New("insert failed")

	_, err := f.session.Send(context.Background(), "hola")
	assert.Error(t, err)

	frame, ok := f.rec.last().(domain.ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, CodeSendFailed, frame.Code)
	assert.Empty(t, f.session.Messages())
}

func TestRowsAfterLoadFailureDoNotBuildPartialList(t *testing.T) {
	f := newFixture(t)
	peer := uuid.New()
	f.store.loadErr = errors.New("db down")
	require.NoError(t, f.session.Select(context.Background(), peer))

	f.feed.insert(msgAt(peer, f.me, "pushed", time.Now()))
	msg, err := f.session.Send(context.Background(), "still sent")
	require.NoError(t, err)
	require.NotNil(t, msg)

	assert.Nil(t, f.session.Messages())
	for _, fr := range f.rec.frames {
		_, isMessage := fr.(domain.MessageEvent)
		assert.False(t, isMessage, "no message frame while history is missing")
	}
	_, isAck := f.rec.last().(domain.SentAck)
	assert.True(t, isAck)

	// a fresh selection clears the failure
	f.store.loadErr = nil
	require.NoError(t, f.session.Select(context.Background(), peer))
	f.feed.insert(msgAt(peer, f.me, "after reload", time.Now()))
	assert.Len(t, f.session.Messages(), 1)
}

func TestBeginSwitchesPeerBeforeLoad(t *testing.T) {
	f := newFixture(t)
	a, b := uuid.New(), uuid.New()

	genA, err := f.session.Begin(a)
	require.NoError(t, err)
	genB, err := f.session.Begin(b)
	require.NoError(t, err)
	assert.Equal(t, b, f.session.Peer())
	assert.Equal(t, 1, f.feed.live())

	// a send between Begin and Load already targets b
	msg, err := f.session.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, b, msg.ReceiverID)

	f.session.Load(context.Background(), genA)
	assert.Nil(t, f.session.Messages(), "load for a replaced selection is a no-op")

	f.session.Load(context.Background(), genB)
	got := f.session.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0].Content)
}
