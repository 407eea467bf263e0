package model

import (
	"time"

	"ecomarket/internal/errors"
)

// timeLayout is the on-disk timestamp format: ISO-8601 with millisecond
// precision and a UTC "Z" suffix.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Time wraps time.Time with the document's JSON representation. Values always
// marshal in UTC with millisecond precision; unmarshalling accepts the exact
// layout or any RFC 3339 string.
type Time struct {
	time.Time
}

// NewTime converts a time.Time into the persisted representation.
func NewTime(t time.Time) Time {
	return Time{Time: t.UTC()}
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the zero
// value in place.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid timestamp literal %s", s)
	}
	s = s[1 : len(s)-1]

	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return errors.Wrapf(err, "parse timestamp %q", s)
	}
	t.Time = parsed.UTC()

	return nil
}

// newTimePtr maps an optional domain time into an optional persisted time.
func newTimePtr(t *time.Time) *Time {
	if t == nil {
		return nil
	}
	v := NewTime(*t)

	return &v
}

// toTimePtr maps an optional persisted time back to the domain.
func toTimePtr(t *Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time

	return &v
}
