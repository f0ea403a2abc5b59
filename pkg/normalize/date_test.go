package normalize

import (
	"testing"
	"time"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"02-05-2024 10:30", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"02-05-2024 10:30:15", time.Date(2024, 5, 2, 10, 30, 15, 0, Zone)},
		{"02-05-2024", time.Date(2024, 5, 2, 0, 0, 0, 0, Zone)},
		{"2/5/2024 9:05", time.Date(2024, 5, 2, 9, 5, 0, 0, Zone)},
		{"02/05/2024", time.Date(2024, 5, 2, 0, 0, 0, 0, Zone)},
		{"02/05/2024 10:30 hs", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"  02/05/2024   10:30  ", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"2024-05-02T10:30:00", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"2024-05-02T10:30:00.123", time.Date(2024, 5, 2, 10, 30, 0, 123000000, Zone)},
		{"2024-05-02 10:30:00", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"2024-05-02T13:30:00Z", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"2024-05-02T10:30:00-03:00", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"2024-05-02T15:30:00+02:00", time.Date(2024, 5, 2, 10, 30, 0, 0, Zone)},
		{"1714744920000", time.Date(2024, 5, 3, 11, 2, 0, 0, Zone)},
		{"1714744920", time.Date(2024, 5, 3, 11, 2, 0, 0, Zone)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			if !ok {
				t.Fatalf("ParseDate(%q) failed", tt.in)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if _, off := got.Zone(); off != -3*3600 {
				t.Errorf("ParseDate(%q) offset = %d, want -10800", tt.in, off)
			}
		})
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "ayer", "32-13-2024", "2024/05", "10:30", "20240503"} {
		if got, ok := ParseDate(in); ok {
			t.Errorf("ParseDate(%q) = %v, want failure", in, got)
		}
	}
}

func TestDateFallsBackToNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := fixedClock(now)

	got, estimated := Date("sin fecha", clock)
	if !estimated {
		t.Error("unparseable date should be estimated")
	}
	if !got.Equal(now) {
		t.Errorf("fallback = %v, want %v", got, now)
	}

	got, estimated = Date("01/06/2024 08:00", clock)
	if estimated {
		t.Error("valid date should not be estimated")
	}
	if got.Hour() != 8 {
		t.Errorf("hour = %d, want 8", got.Hour())
	}
}

func TestDatePtr(t *testing.T) {
	if DatePtr("") != nil {
		t.Error("empty ETA should be nil")
	}
	if p := DatePtr("10/05/2024"); p == nil || p.Day() != 10 {
		t.Errorf("DatePtr = %v", p)
	}
}

func TestJoinDateTime(t *testing.T) {
	if got := JoinDateTime(" 02/05/2024 ", " 10:30 "); got != "02/05/2024 10:30" {
		t.Errorf("JoinDateTime = %q", got)
	}
	if got := JoinDateTime("02/05/2024", ""); got != "02/05/2024" {
		t.Errorf("JoinDateTime without time = %q", got)
	}
}

func TestFormatLocal(t *testing.T) {
	ts := time.Date(2024, 5, 2, 13, 30, 0, 0, time.UTC)
	if got := FormatLocal(ts); got != "02/05/2024 10:30" {
		t.Errorf("FormatLocal = %q", got)
	}
}
