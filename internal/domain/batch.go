package domain

// Batch is a contiguous slice of deduplicated numbers submitted together to
// respect the platform's anti-spam policy. Batches are contiguous and
// exhaustive: every retained number appears in exactly one batch, in its
// original relative order.
type Batch struct {
	// Numbers are the members of this batch, at most the configured
	// batch size.
	Numbers []Number

	// Index is the 1-based position of this batch in the plan.
	Index int

	// Total is the total number of batches in the plan, computed over the
	// full deduplicated input regardless of where the run started.
	Total int
}

// Size returns the number of entries in the batch.
func (b Batch) Size() int {
	return len(b.Numbers)
}

// Last reports whether this is the final batch of the plan.
func (b Batch) Last() bool {
	return b.Index >= b.Total
}
