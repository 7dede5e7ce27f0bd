// Package report builds and renders the post-processing summary: accepted
// and rejected counts, the rejected rows for manual handling, the audit
// trail of rewritten numbers, and an advisory list of accepted numbers that
// look undialable.
package report

import (
	"fmt"
	"io"

	"github.com/uno-labs/waroster/internal/domain"
)

// Summary is the reporting view of one processed import file.
type Summary struct {
	Result domain.Result

	// Deduped is the number of unique accepted numbers.
	Deduped int

	// BatchSize and TotalBatches describe the plan built over the
	// deduplicated numbers.
	BatchSize    int
	TotalBatches int

	// Suspect lists accepted numbers flagged by the advisory check.
	// Advisory only: these numbers are still submitted.
	Suspect []Suspect
}

// Build assembles a Summary from a processing result and plan figures.
func Build(result domain.Result, deduped, batchSize, totalBatches int) Summary {
	return Summary{
		Result:       result,
		Deduped:      deduped,
		BatchSize:    batchSize,
		TotalBatches: totalBatches,
		Suspect:      Advisory(result.Valid),
	}
}

// Render writes the human-readable summary.
func (s Summary) Render(w io.Writer) {
	fmt.Fprintln(w, "=== Processing Summary ===")
	fmt.Fprintf(w, "Total valid numbers: %d (%d unique)\n", s.Result.ValidCount(), s.Deduped)
	fmt.Fprintf(w, "Total invalid numbers: %d\n", s.Result.RejectedCount())
	fmt.Fprintf(w, "Batch size: %d\n", s.BatchSize)
	fmt.Fprintf(w, "Total batches: %d\n", s.TotalBatches)

	if len(s.Result.Rejected) > 0 {
		fmt.Fprintln(w, "\n=== Invalid Numbers (Require Manual Processing) ===")
		fmt.Fprintln(w, "The following numbers could not be processed automatically:")
		for _, rej := range s.Result.Rejected {
			fmt.Fprintf(w, "  • Row %d: %s\n", rej.Row, rej.Raw)
		}
	}

	if len(s.Result.Changes) > 0 {
		fmt.Fprintln(w, "\n=== Normalized Numbers (Audit) ===")
		for _, ch := range s.Result.Changes {
			fmt.Fprintf(w, "  %s -> %s\n", ch.Original, ch.Normalized)
		}
	}

	if len(s.Suspect) > 0 {
		fmt.Fprintln(w, "\n=== Suspect Numbers (Will Still Be Submitted) ===")
		for _, sus := range s.Suspect {
			fmt.Fprintf(w, "  %s: %s\n", sus.Number, sus.Reason)
		}
	}
}
