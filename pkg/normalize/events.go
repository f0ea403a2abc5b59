package normalize

import (
	"slices"

	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// SortEvents orders events newest-first in place. Events with an estimated
// timestamp go last, keeping their original relative order; ties keep their
// original order as well.
func SortEvents(events []tracking.Event) {
	slices.SortStableFunc(events, func(a, b tracking.Event) int {
		switch {
		case a.Estimated && b.Estimated:
			return 0
		case a.Estimated:
			return 1
		case b.Estimated:
			return -1
		}
		return b.Timestamp.Compare(a.Timestamp)
	})
}

// Finalize completes a record built by a provider: it cleans descriptions,
// assigns each event its stage, sorts events, derives Status from the label
// (or from the newest event when the label is empty) and fills LastUpdated
// from the newest dated event when the carrier gave none.
func Finalize(rec *tracking.Record, rules Rules) *tracking.Record {
	for i := range rec.Events {
		ev := &rec.Events[i]
		ev.Description = Collapse(ev.Description)
		ev.Location = Collapse(ev.Location)
		ev.Stage = rules.Classify(ev.Description)
	}
	SortEvents(rec.Events)

	rec.StatusLabel = Collapse(rec.StatusLabel)
	source := rec.StatusLabel
	if source == "" {
		if latest, ok := rec.Latest(); ok {
			source = latest.Description
		}
	}
	rec.Status = rules.Classify(source)

	if rec.LastUpdated == nil {
		for _, ev := range rec.Events {
			if !ev.Estimated {
				t := ev.Timestamp
				rec.LastUpdated = &t
				break
			}
		}
	}
	if rec.Details.Empty() {
		rec.Details = nil
	}
	if rec.Events == nil {
		rec.Events = []tracking.Event{}
	}
	return rec
}
