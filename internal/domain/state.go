package domain

import "time"

// RunState is the persistent progress of an import run. It is saved after
// each completed batch so an interrupted run can resume at the next batch.
type RunState struct {
	// InputPath is the import file the run was started from.
	InputPath string `json:"input_path"`

	// InputSHA256 is the hex digest of the import file's contents. State
	// recorded against a different export must not be resumed.
	InputSHA256 string `json:"input_sha256"`

	// LastBatch is the index of the last batch that completed.
	LastBatch int `json:"last_batch"`

	// TotalBatches is the plan's total batch count at save time.
	TotalBatches int `json:"total_batches"`

	// UpdatedAt is the timestamp of the last save.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty returns true if the state has not been initialized.
func (s RunState) IsEmpty() bool {
	return s.InputPath == ""
}

// Matches reports whether the state was recorded against the given input
// digest and may be used to resume.
func (s RunState) Matches(sha256Hex string) bool {
	return !s.IsEmpty() && s.InputSHA256 == sha256Hex
}

// Complete reports whether every batch of the plan has been processed.
func (s RunState) Complete() bool {
	return !s.IsEmpty() && s.TotalBatches > 0 && s.LastBatch >= s.TotalBatches
}

// UpdateAfterBatch records a completed batch.
func (s *RunState) UpdateAfterBatch(batch Batch) {
	s.LastBatch = batch.Index
	s.TotalBatches = batch.Total
	s.UpdatedAt = time.Now()
}
