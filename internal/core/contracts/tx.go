package contracts

import "context"

// Transactor runs fn in one database transaction. Repositories called with
// the ctx handed to fn take part in it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
