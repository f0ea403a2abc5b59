package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/parceltrack/pkg/cache"
)

// Zone is the fixed offset every timestamp is expressed in.
var Zone = time.FixedZone("ART", -3*60*60)

// localLayouts carry no offset and are read as ART wall time.
var localLayouts = []string{
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// zonedLayouts carry their own offset; the result is converted to ART.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05 -0700",
}

// ParseDate parses a carrier timestamp. It accepts dd-mm-yyyy and
// dd/mm/yyyy with optional hh:mm[:ss], ISO-8601 with or without offset, and
// a trailing "hs" marker. Ten or thirteen digit values are read as Unix
// seconds or milliseconds.
func ParseDate(s string) (time.Time, bool) {
	s = cleanDate(s)
	if s == "" {
		return time.Time{}, false
	}
	if IsDigits(s) && (len(s) == 10 || len(s) == 13) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		if len(s) == 13 {
			return time.UnixMilli(n).In(Zone), true
		}
		return time.Unix(n, 0).In(Zone), true
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(Zone), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, Zone); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date parses s, falling back to clock.Now() in ART when s is unparseable.
// estimated reports whether the fallback was used.
func Date(s string, clock cache.Clock) (t time.Time, estimated bool) {
	if t, ok := ParseDate(s); ok {
		return t, false
	}
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return clock.Now().In(Zone), true
}

// DatePtr parses an optional value, returning nil when it is missing or
// unparseable. Used for fields like ETA where "now" would be misleading.
func DatePtr(s string) *time.Time {
	if t, ok := ParseDate(s); ok {
		return &t
	}
	return nil
}

// JoinDateTime combines separate date and time fields ("02/05/2024",
// "10:30") into one parseable value.
func JoinDateTime(date, clock string) string {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if clock == "" {
		return date
	}
	return date + " " + clock
}

// FormatLocal renders t in ART as dd/mm/yyyy hh:mm.
func FormatLocal(t time.Time) string {
	return t.In(Zone).Format("02/01/2006 15:04")
}

func cleanDate(s string) string {
	s = Collapse(s)
	lower := strings.ToLower(s)
	for _, suffix := range []string{" hs.", " hs", "hs.", "hs"} {
		if strings.HasSuffix(lower, suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}
	return s
}
