// Package normalize implements the phone number cleaning pipeline.
//
// A raw cell value from the import file passes through an ordered series of
// pure steps: trim, letter rejection, formatting filter, local prefix
// rewrite, and final validation. Each step is independently testable; the
// 08 -> +628 rewrite in particular is kept isolated so the Indonesian
// local-format rule stays auditable.
package normalize

import (
	"strings"

	"github.com/uno-labs/waroster/internal/domain"
)

// Outcome is the result of normalizing one raw value. Exactly one of OK or
// rejection holds: a value is either accepted as a Number or rejected with
// its trimmed original preserved, never both and never neither.
type Outcome struct {
	// Original is the trimmed input, retained for audit and for rejection
	// reporting.
	Original string

	// Number is the accepted international-format number. Empty unless OK.
	Number domain.Number

	// Changed reports whether normalization altered the trimmed input.
	Changed bool

	// OK reports whether the value was accepted.
	OK bool
}

// Normalize runs the cleaning pipeline over one raw cell value.
func Normalize(raw string) Outcome {
	original := strings.TrimSpace(raw)

	if containsLetter(original) {
		return Outcome{Original: original}
	}

	cleaned := filterDialable(original)
	cleaned = rewriteLocalPrefix(cleaned)

	if !isInternational(cleaned) {
		return Outcome{Original: original}
	}

	return Outcome{
		Original: original,
		Number:   domain.Number(cleaned),
		Changed:  cleaned != original,
		OK:       true,
	}
}

// ChangeRecord returns the audit record for this outcome, or false when the
// input was accepted unchanged or rejected.
func (o Outcome) ChangeRecord() (domain.ChangeRecord, bool) {
	if !o.OK || !o.Changed {
		return domain.ChangeRecord{}, false
	}
	return domain.ChangeRecord{Original: o.Original, Normalized: string(o.Number)}, true
}
