// Package jsontime provides JSON codecs for the time representations used
// by the IBM Cloud IAM token payload: absolute instants as Unix seconds and
// durations as integer seconds.
package jsontime

import (
	"encoding/json"
	"time"
)

// Unix is a time.Time that serializes to/from Unix seconds in JSON.
type Unix time.Time

// Time returns the underlying time.Time value.
func (u Unix) Time() time.Time {
	return time.Time(u)
}

// IsZero reports whether u represents the zero time instant.
func (u Unix) IsZero() bool {
	return time.Time(u).IsZero()
}

// Before reports whether u is before t.
func (u Unix) Before(t time.Time) bool {
	return time.Time(u).Before(t)
}

// Add returns the time u+d.
func (u Unix) Add(d time.Duration) Unix {
	return Unix(time.Time(u).Add(d))
}

// String returns the time formatted as a string.
func (u Unix) String() string {
	return time.Time(u).String()
}

// MarshalJSON implements json.Marshaler.
func (u Unix) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(u).Unix())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Unix) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var sec int64
	if err := json.Unmarshal(b, &sec); err != nil {
		return err
	}
	*u = Unix(time.Unix(sec, 0))
	return nil
}

// Seconds is a time.Duration that serializes to/from an integer number of
// seconds in JSON, the way OAuth-style token endpoints report expires_in.
type Seconds time.Duration

// Duration returns the underlying time.Duration value.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

// String returns the duration formatted as a string.
func (s Seconds) String() string {
	return time.Duration(s).String()
}

// MarshalJSON implements json.Marshaler.
func (s Seconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(time.Duration(s) / time.Second))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Seconds) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var sec int64
	if err := json.Unmarshal(b, &sec); err != nil {
		return err
	}
	*s = Seconds(time.Duration(sec) * time.Second)
	return nil
}
