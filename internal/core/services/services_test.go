package services

import (
	"context"
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// inlineTx runs fn directly and counts the outcome.
type inlineTx struct {
	committed  int
	rolledBack int
}

func (t *inlineTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		t.rolledBack++
		return err
	}
	t.committed++
	return nil
}
