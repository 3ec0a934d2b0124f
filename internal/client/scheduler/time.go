package scheduler

import (
	"bytes"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
)

// Layout is the minute-resolution ISO format the backend emits and accepts
// for every timestamp (no seconds, no zone).
const Layout = "2006-01-02T15:04"

const layoutSeconds = "2006-01-02T15:04:05"

// Time wraps time.Time with the backend's minute-resolution JSON encoding.
// The zero value round-trips as an empty string.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time { return Time{Time: t} }

func ParseTime(s string) (Time, error) {
	if s == "" {
		return Time{}, nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		t, err = time.Parse(layoutSeconds, s)
	}
	if err != nil {
		return Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return Time{Time: t}, nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := go_json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decoding timestamp: %w", err)
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed.Time
	return nil
}

func (t Time) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}
