package batch

import "github.com/uno-labs/waroster/internal/domain"

// DefaultPlanner partitions a deduplicated number list into contiguous
// fixed-size batches. Planning is pure computation: the caller owns any
// pacing or checkpoint pauses between batches.
type DefaultPlanner struct {
	numbers []domain.Number
	size    int
	next    int
	total   int
}

// NewDefaultPlanner creates a planner over the given numbers.
//
// The input is deduplicated preserving first-occurrence order before
// partitioning; equality is exact string equality on the normalized form.
// size must be positive. start is the 1-based batch index to begin at; a
// start beyond the total batch count yields an exhausted planner, which is
// the valid "nothing to do" state, not an error.
func NewDefaultPlanner(numbers []domain.Number, size, start int) *DefaultPlanner {
	deduped := Dedupe(numbers)
	total := (len(deduped) + size - 1) / size

	if start < 1 {
		start = 1
	}

	return &DefaultPlanner{
		numbers: deduped,
		size:    size,
		next:    start,
		total:   total,
	}
}

// Total returns the total batch count over the full deduplicated input.
func (p *DefaultPlanner) Total() int {
	return p.total
}

// Count returns the number of deduplicated entries.
func (p *DefaultPlanner) Count() int {
	return len(p.numbers)
}

// Next returns the next batch, or false when the plan is exhausted.
func (p *DefaultPlanner) Next() (domain.Batch, bool) {
	if p.next > p.total {
		return domain.Batch{}, false
	}

	lo := (p.next - 1) * p.size
	hi := lo + p.size
	if hi > len(p.numbers) {
		hi = len(p.numbers)
	}

	b := domain.Batch{
		Numbers: p.numbers[lo:hi],
		Index:   p.next,
		Total:   p.total,
	}
	p.next++
	return b, true
}

// Dedupe removes repeated numbers while keeping each number's earliest
// position in the original order.
func Dedupe(numbers []domain.Number) []domain.Number {
	seen := make(map[domain.Number]struct{}, len(numbers))
	out := make([]domain.Number, 0, len(numbers))
	for _, n := range numbers {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
