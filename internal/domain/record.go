package domain

// RawRecord is one data row read from the import file. It is ephemeral:
// read once, normalized, and discarded.
type RawRecord struct {
	// Row is the 1-based row number in the file, counting the header.
	Row int

	// Raw is the free-text phone number cell, untrimmed.
	Raw string
}
