package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantOK      bool
		wantNumber  string
		wantChanged bool
	}{
		{
			name:        "indonesian local format with hyphens",
			raw:         "0812-3456-7890",
			wantOK:      true,
			wantNumber:  "+6281234567890",
			wantChanged: true,
		},
		{
			name:        "already canonical",
			raw:         "+6281234567890",
			wantOK:      true,
			wantNumber:  "+6281234567890",
			wantChanged: false,
		},
		{
			name:        "international with spaces",
			raw:         "+62 812 3456 7890",
			wantOK:      true,
			wantNumber:  "+6281234567890",
			wantChanged: true,
		},
		{
			name:        "parentheses and hyphens",
			raw:         "+62 (812) 3456-7890",
			wantOK:      true,
			wantNumber:  "+6281234567890",
			wantChanged: true,
		},
		{
			name:        "surrounding whitespace only",
			raw:         "  +6281234567890  ",
			wantOK:      true,
			wantNumber:  "+6281234567890",
			wantChanged: false,
		},
		{
			name:   "contains letters",
			raw:    "08-1234-ABCD",
			wantOK: false,
		},
		{
			name:   "digits without plus or local prefix",
			raw:    "1234567890",
			wantOK: false,
		},
		{
			name:   "empty string",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			raw:    "   ",
			wantOK: false,
		},
		{
			name:   "plus with no digits",
			raw:    "+",
			wantOK: false,
		},
		{
			name:   "punctuation only",
			raw:    "()-",
			wantOK: false,
		},
		{
			name:        "local prefix with dots dropped by filter",
			raw:         "0812.3456.7890",
			wantOK:      true,
			wantNumber:  "+6281234567890",
			wantChanged: true,
		},
		{
			name:   "plus embedded after local prefix",
			raw:    "08+12",
			wantOK: false,
		},
		{
			name:   "plus in the middle",
			raw:    "62+81234567890",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got.OK != tt.wantOK {
				t.Fatalf("Normalize(%q).OK = %v, want %v", tt.raw, got.OK, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if string(got.Number) != tt.wantNumber {
				t.Errorf("Number = %q, want %q", got.Number, tt.wantNumber)
			}
			if got.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.wantChanged)
			}
		})
	}
}

func TestNormalize_PreservesTrimmedOriginal(t *testing.T) {
	got := Normalize("  08-1234-ABCD  ")
	if got.OK {
		t.Fatal("expected rejection")
	}
	if got.Original != "08-1234-ABCD" {
		t.Errorf("Original = %q, want %q", got.Original, "08-1234-ABCD")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize("0812-3456-7890")
	if !first.OK {
		t.Fatal("expected acceptance")
	}

	second := Normalize(string(first.Number))
	if !second.OK {
		t.Fatal("expected second pass to accept")
	}
	if second.Number != first.Number {
		t.Errorf("second pass = %q, want %q", second.Number, first.Number)
	}
	if second.Changed {
		t.Error("second pass reported a change on canonical input")
	}
}

func TestOutcome_ChangeRecord(t *testing.T) {
	rec, ok := Normalize("0812-3456-7890").ChangeRecord()
	if !ok {
		t.Fatal("expected a change record")
	}
	if rec.Original != "0812-3456-7890" || rec.Normalized != "+6281234567890" {
		t.Errorf("ChangeRecord = %+v", rec)
	}

	if _, ok := Normalize("+6281234567890").ChangeRecord(); ok {
		t.Error("unchanged input produced a change record")
	}
	if _, ok := Normalize("not a number").ChangeRecord(); ok {
		t.Error("rejected input produced a change record")
	}
}

func TestRewriteLocalPrefix(t *testing.T) {
	if got := rewriteLocalPrefix("0812345"); got != "+62812345" {
		t.Errorf("rewriteLocalPrefix(0812345) = %q", got)
	}
	// Matched at position 0 only: a leading '+' blocks the rewrite.
	if got := rewriteLocalPrefix("+0812345"); got != "+0812345" {
		t.Errorf("rewriteLocalPrefix(+0812345) = %q", got)
	}
	if got := rewriteLocalPrefix("62081234"); got != "62081234" {
		t.Errorf("rewriteLocalPrefix(62081234) = %q", got)
	}
}
