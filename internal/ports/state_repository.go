package ports

import (
	"context"

	"github.com/uno-labs/waroster/internal/domain"
)

// StateRepository handles run-state persistence for resuming interrupted
// imports. Implementations persist state to disk (or other storage)
// atomically.
type StateRepository interface {
	// Load retrieves the last saved state.
	// Returns an empty state and nil error if no state exists.
	// Returns an error only for actual read failures.
	Load(ctx context.Context) (domain.RunState, error)

	// Save persists the current state atomically.
	// The implementation should use atomic writes (write to temp file,
	// then rename) to prevent corruption on crash.
	Save(ctx context.Context, state domain.RunState) error
}
