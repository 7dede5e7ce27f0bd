package ports

import (
	"context"

	"github.com/uno-labs/waroster/internal/domain"
)

// Driver feeds accepted numbers to the chat-search interface, one at a
// time. Implementations own everything on the far side of the batch
// boundary: session setup, operator checkpoints, per-item pacing, clearing
// the search field, and any retry policy.
//
// The application guarantees Submit is called with numbers in plan order
// and that BeginBatch/EndBatch bracket every batch. A Submit failure must
// not abort the batch; the application logs it and continues with the next
// number.
type Driver interface {
	// Start prepares the driving session. Interactive implementations
	// block here on operator checkpoints (QR scan, group navigation).
	Start(ctx context.Context) error

	// BeginBatch announces the batch about to be submitted.
	BeginBatch(ctx context.Context, batch domain.Batch) error

	// Submit transmits one number to the search interface.
	Submit(ctx context.Context, number domain.Number) error

	// EndBatch marks the batch as finished. Interactive implementations
	// block here for operator confirmation when more batches remain.
	EndBatch(ctx context.Context, batch domain.Batch) error

	// Close tears down the session.
	Close() error
}
