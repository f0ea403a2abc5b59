package normalize

import (
	"strings"

	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Rule maps any of its keywords to Status.
type Rule struct {
	Status   tracking.Status
	Keywords []string
}

// Rules is an ordered keyword table. The first rule with a keyword
// contained in the label wins, so order encodes precedence.
type Rules []Rule

// Classify maps a free-text label. Matching is case and accent insensitive;
// no match yields StatusUnknown.
func (rs Rules) Classify(label string) tracking.Status {
	folded := Fold(label)
	if strings.TrimSpace(folded) == "" {
		return tracking.StatusUnknown
	}
	for _, r := range rs {
		for _, kw := range r.Keywords {
			if strings.Contains(folded, Fold(kw)) {
				return r.Status
			}
		}
	}
	return tracking.StatusUnknown
}
