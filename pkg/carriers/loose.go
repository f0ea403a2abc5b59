package carriers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/parceltrack/pkg/normalize"
)

// LooseString accepts a JSON string, number or boolean. Objects and arrays
// decode as absent. Carrier payloads are not consistent about quoting.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case float64, bool:
		*s = LooseString(strings.TrimSpace(string(data)))
	}
	return nil
}

// String returns the value as plain text, "" for nil.
func (s *LooseString) String() string {
	if s == nil {
		return ""
	}
	return normalize.Text(string(*s))
}

// LooseInt accepts a JSON number or a numeric string.
type LooseInt int

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	var s LooseString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		// Non-numeric piece counts are treated as absent.
		return nil
	}
	*n = LooseInt(f)
	return nil
}

// Ptr returns the value as *int, nil for a nil or non-positive count.
func (n *LooseInt) Ptr() *int {
	if n == nil || *n <= 0 {
		return nil
	}
	v := int(*n)
	return &v
}

// LooseBool accepts true/false as a JSON boolean, a string or 0/1.
// Anything else leaves it unset.
type LooseBool struct {
	set, val bool
}

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	var s LooseString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "true", "1":
		*b = LooseBool{set: true, val: true}
	case "false", "0":
		*b = LooseBool{set: true}
	}
	return nil
}

// False reports whether the value was present and false.
func (b *LooseBool) False() bool {
	return b != nil && b.set && !b.val
}

// LooseList decodes a JSON array element by element, dropping elements
// that do not decode into T. A value that is not an array decodes as empty.
type LooseList[T any] []T

func (l *LooseList[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
