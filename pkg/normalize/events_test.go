package normalize

import (
	"slices"
	"strconv"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/matzehuels/parceltrack/pkg/tracking"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, Zone)
}

func TestSortEventsEstimatedLast(t *testing.T) {
	events := []tracking.Event{
		{Timestamp: at(1, 9), Description: "a"},
		{Timestamp: at(9, 9), Estimated: true, Description: "x"},
		{Timestamp: at(3, 9), Description: "b"},
		{Timestamp: at(9, 9), Estimated: true, Description: "y"},
		{Timestamp: at(2, 9), Description: "c"},
	}
	SortEvents(events)

	want := []string{"b", "c", "a", "x", "y"}
	for i, ev := range events {
		if ev.Description != want[i] {
			t.Fatalf("order = %v, want %v", descriptions(events), want)
		}
	}
}

func TestSortEventsStrictlyDescendingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offsets := rapid.SliceOfNDistinct(rapid.IntRange(0, 1_000_000), 0, 40, rapid.ID[int]).Draw(t, "offsets")
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, Zone)
		events := make([]tracking.Event, len(offsets))
		for i, off := range offsets {
			events[i] = tracking.Event{Timestamp: base.Add(time.Duration(off) * time.Minute)}
		}

		SortEvents(events)

		for i := 1; i < len(events); i++ {
			if !events[i-1].Timestamp.After(events[i].Timestamp) {
				t.Fatalf("events[%d]=%v not after events[%d]=%v", i-1, events[i-1].Timestamp, i, events[i].Timestamp)
			}
		}
	})
}

func TestSortEventsEstimatedKeepRelativeOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		events := make([]tracking.Event, n)
		var wantEstimated []string
		for i := range events {
			id := strconv.Itoa(i)
			est := rapid.Bool().Draw(t, "estimated")
			events[i] = tracking.Event{
				Timestamp:   at(1, 0).Add(time.Duration(rapid.IntRange(0, 500).Draw(t, "minutes")) * time.Minute),
				Estimated:   est,
				Description: id,
			}
			if est {
				wantEstimated = append(wantEstimated, id)
			}
		}

		SortEvents(events)

		var gotEstimated []string
		for _, ev := range events {
			if ev.Estimated {
				gotEstimated = append(gotEstimated, ev.Description)
				continue
			}
			if len(gotEstimated) > 0 {
				t.Fatal("dated event found after an estimated one")
			}
		}
		if !slices.Equal(gotEstimated, wantEstimated) {
			t.Fatalf("estimated order = %v, want %v", gotEstimated, wantEstimated)
		}
	})
}

func TestFinalize(t *testing.T) {
	rec := &tracking.Record{
		Carrier:     tracking.Andreani,
		StatusLabel: "  ",
		Events: []tracking.Event{
			{Timestamp: at(1, 9), Description: "Envío  ingresado"},
			{Timestamp: at(4, 9), Estimated: true, Description: "Consulta"},
			{Timestamp: at(3, 9), Description: "En  camino", Location: " Monte  Grande "},
		},
		Details: &tracking.Details{},
	}

	Finalize(rec, testRules)

	if rec.Status != tracking.StatusInTransit {
		t.Errorf("Status = %s, want in_transit from newest event", rec.Status)
	}
	if rec.StatusLabel != "" {
		t.Errorf("StatusLabel = %q, want empty", rec.StatusLabel)
	}
	if rec.Events[0].Description != "En camino" || rec.Events[0].Location != "Monte Grande" {
		t.Errorf("newest event = %+v", rec.Events[0])
	}
	if rec.Events[0].Stage != tracking.StatusInTransit || rec.Events[1].Stage != tracking.StatusCreated {
		t.Errorf("stages = %s, %s", rec.Events[0].Stage, rec.Events[1].Stage)
	}
	if rec.Events[2].Description != "Consulta" {
		t.Errorf("estimated event should be last, got %q", rec.Events[2].Description)
	}
	if rec.LastUpdated == nil || !rec.LastUpdated.Equal(at(3, 9)) {
		t.Errorf("LastUpdated = %v, want %v", rec.LastUpdated, at(3, 9))
	}
	if rec.Details != nil {
		t.Error("empty details should be dropped")
	}
}

func TestFinalizeLabelWins(t *testing.T) {
	rec := &tracking.Record{
		StatusLabel: "Entregado",
		Events:      []tracking.Event{{Timestamp: at(1, 9), Description: "En camino"}},
	}
	Finalize(rec, testRules)
	if rec.Status != tracking.StatusDelivered {
		t.Errorf("Status = %s, want delivered", rec.Status)
	}
}

func TestFinalizeNoEvents(t *testing.T) {
	rec := Finalize(&tracking.Record{}, testRules)
	if rec.Events == nil || len(rec.Events) != 0 {
		t.Errorf("Events = %v, want empty slice", rec.Events)
	}
	if rec.Status != tracking.StatusUnknown {
		t.Errorf("Status = %s, want unknown", rec.Status)
	}
}

func descriptions(events []tracking.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Description
	}
	return out
}
