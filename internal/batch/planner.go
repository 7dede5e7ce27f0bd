// Package batch partitions the deduplicated number list into fixed-size
// batches so submissions stay inside the platform's anti-spam policy.
package batch

import "github.com/uno-labs/waroster/internal/domain"

// Planner produces the batches of an import run, one at a time, from the
// requested starting batch to the end of the input.
type Planner interface {
	// Total returns the total batch count over the full deduplicated
	// input, independent of the starting batch.
	Total() int

	// Count returns the number of deduplicated entries.
	Count() int

	// Next returns the next batch of the plan. The second return value is
	// false when the plan is exhausted.
	Next() (domain.Batch, bool)
}
