package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversationContains(t *testing.T) {
	me, peer, other := uuid.New(), uuid.New(), uuid.New()
	conv := Conversation{UserID: me, PeerID: peer}

	tests := []struct {
		name     string
		msg      Message
		expected bool
	}{
		{name: "outgoing", msg: Message{SenderID: me, ReceiverID: peer}, expected: true},
		{name: "incoming", msg: Message{SenderID: peer, ReceiverID: me}, expected: true},
		{name: "peer to third party", msg: Message{SenderID: peer, ReceiverID: other}, expected: false},
		{name: "third party to me", msg: Message{SenderID: other, ReceiverID: me}, expected: false},
		{name: "note to self", msg: Message{SenderID: me, ReceiverID: me}, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, conv.Contains(tt.msg))
		})
	}
}

func TestChangeFilterMatches(t *testing.T) {
	peer, a, b := uuid.New(), uuid.New(), uuid.New()
	f := ChangeFilter{Participant: peer}

	assert.True(t, f.Matches(ChangeEvent{Kind: ChangeInsert, New: &Message{SenderID: peer, ReceiverID: a}}))
	assert.True(t, f.Matches(ChangeEvent{Kind: ChangeInsert, New: &Message{SenderID: a, ReceiverID: peer}}))
	assert.True(t, f.Matches(ChangeEvent{Kind: ChangeDelete, Old: &Message{SenderID: peer, ReceiverID: b}}))
	assert.False(t, f.Matches(ChangeEvent{Kind: ChangeInsert, New: &Message{SenderID: a, ReceiverID: b}}))
	assert.False(t, f.Matches(ChangeEvent{Kind: ChangeInsert}))
	assert.True(t, ChangeFilter{}.Matches(ChangeEvent{Kind: ChangeInsert}))
}

func TestNewIdentityNormalizesEmail(t *testing.T) {
	id := NewIdentity("  Ana@Example.COM ", "hash")
	assert.Equal(t, "ana@example.com", id.Email)
	assert.NotEqual(t, uuid.Nil, id.ID)
}

func TestSignUpStateTerminal(t *testing.T) {
	assert.True(t, StateSuccess.Terminal())
	assert.True(t, StateFailure.Terminal())
	assert.False(t, StateAwaitingVerification.Terminal())
}
