package contracts

import "context"

type AsyncWorker interface {
	// Run starts the listen loop and blocks until ctx is done
	Run(ctx context.Context) error
	// ProcessNotification decodes one database notification and
	// republishes it to the change feed
	ProcessNotification(ctx context.Context, payload []byte) error
}
