package domain

import "github.com/google/uuid"

type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"
)

// ChangeEvent is a row change on the messages table.
type ChangeEvent struct {
	Kind  ChangeKind `json:"type"`
	Table string     `json:"table"`
	New   *Message   `json:"record,omitempty"`
	Old   *Message   `json:"old_record,omitempty"`
}

func (e ChangeEvent) row() *Message {
	if e.New != nil {
		return e.New
	}
	return e.Old
}

// ChangeFilter selects rows whose sender or receiver equals Participant.
// A zero filter matches everything.
type ChangeFilter struct {
	Participant uuid.UUID
}

func (f ChangeFilter) Matches(e ChangeEvent) bool {
	if f.Participant == uuid.Nil {
		return true
	}
	m := e.row()
	if m == nil {
		return false
	}
	return m.SenderID == f.Participant || m.ReceiverID == f.Participant
}
