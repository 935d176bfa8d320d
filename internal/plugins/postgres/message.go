package postgres

import (
	"context"
	"database/sql"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/google/uuid"
)

type MessageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{
		db: db,
	}
}

func (r *MessageRepo) InsertMessage(
	ctx context.Context,
	msg *domain.Message,
) error {
	if msg.ID == uuid.Nil || msg.SenderID == uuid.Nil || msg.ReceiverID == uuid.Nil {
		return domain.ErrInvalidMessage
	}
	exec := GetExecutor(ctx, r.db)
	return exec.QueryRowContext(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		msg.ID,
		msg.SenderID,
		msg.ReceiverID,
		msg.Content,
		msg.CreatedAt,
	).Scan(&msg.CreatedAt)
}

func (r *MessageRepo) ListConversation(
	ctx context.Context,
	a, b uuid.UUID,
) ([]domain.Message, error) {
	if a == uuid.Nil || b == uuid.Nil {
		return nil, domain.ErrInvalidUserID
	}
	exec := GetExecutor(ctx, r.db)
	rows, err := exec.QueryContext(ctx, `
		SELECT id, sender_id, receiver_id, content, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC
	`, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	msgs := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID,
			&m.SenderID,
			&m.ReceiverID,
			&m.Content,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
