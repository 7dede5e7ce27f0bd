package report

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/uno-labs/waroster/internal/domain"
)

// Suspect is an accepted number that libphonenumber cannot parse or does
// not consider dialable. The check never overrides acceptance: the cleaning
// rules are deliberately simpler than carrier metadata, so suspects are
// surfaced for the operator instead of being rejected.
type Suspect struct {
	Number domain.Number
	Reason string
}

// Advisory checks accepted numbers against libphonenumber metadata.
// Numbers always carry a leading '+', so no default region is assumed.
func Advisory(numbers []domain.Number) []Suspect {
	var out []Suspect
	seen := make(map[domain.Number]struct{}, len(numbers))

	for _, n := range numbers {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		parsed, err := phonenumbers.Parse(string(n), "")
		if err != nil {
			out = append(out, Suspect{Number: n, Reason: "unparseable country code"})
			continue
		}
		if !phonenumbers.IsValidNumber(parsed) {
			out = append(out, Suspect{Number: n, Reason: "not a known dialable number"})
		}
	}
	return out
}
