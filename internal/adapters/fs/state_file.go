// Package fs provides file-system adapters for run-state persistence.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/uno-labs/waroster/internal/domain"
)

const stateFileName = "waroster-state.json"

// StateFile implements ports.StateRepository using a JSON file.
type StateFile struct {
	dir string
}

// NewStateFile creates a StateFile repository rooted at dir.
func NewStateFile(dir string) *StateFile {
	return &StateFile{dir: dir}
}

// Load retrieves the last saved run state from disk.
// Returns an empty state and nil error if no state file exists.
func (r *StateFile) Load(ctx context.Context) (domain.RunState, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.RunState{}, nil
		}
		return domain.RunState{}, err
	}

	var state domain.RunState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.RunState{}, err
	}
	return state, nil
}

// Save persists the run state atomically.
// Writes to a temp file first, then renames, to prevent corruption if the
// process dies mid-write.
func (r *StateFile) Save(ctx context.Context, state domain.RunState) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the state file.
func (r *StateFile) Path() string {
	return filepath.Join(r.dir, stateFileName)
}
