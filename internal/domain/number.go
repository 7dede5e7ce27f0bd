package domain

// Number is a validated phone number in international format: a leading '+'
// followed only by digits. A Number is immutable once produced by the
// normalizer.
type Number string

// String returns the number as a plain string.
func (n Number) String() string {
	return string(n)
}

// RejectedEntry records a row whose phone number failed validation.
// Raw is the trimmed original text, not any partially transformed form.
type RejectedEntry struct {
	// Row is the 1-based row number in the import file, counting the
	// header, so the first data row is 2.
	Row int

	// Raw is the original trimmed cell text.
	Raw string
}

// ChangeRecord pairs an original raw value with the normalized form it was
// rewritten to. It is emitted only when normalization altered the input and
// is used for audit reporting, never for driving.
type ChangeRecord struct {
	Original   string
	Normalized string
}

// Result is the outcome of processing one import file.
type Result struct {
	// Valid holds every number that passed normalization, in file order,
	// duplicates included. Deduplication happens at planning time.
	Valid []Number

	// Rejected holds every row that failed validation.
	Rejected []RejectedEntry

	// Changes holds the audit trail of rewritten numbers.
	Changes []ChangeRecord
}

// ValidCount returns the count of accepted numbers (before deduplication).
func (r Result) ValidCount() int {
	return len(r.Valid)
}

// RejectedCount returns the count of rejected rows.
func (r Result) RejectedCount() int {
	return len(r.Rejected)
}
