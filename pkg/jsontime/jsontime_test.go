package jsontime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnix_MarshalJSON(t *testing.T) {
	u := Unix(time.Unix(1683906580, 0))
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1683906580" {
		t.Fatalf("expected 1683906580, got %s", b)
	}
}

func TestUnix_UnmarshalJSON(t *testing.T) {
	var u Unix
	if err := json.Unmarshal([]byte("1683906580"), &u); err != nil {
		t.Fatal(err)
	}
	if u.Time().Unix() != 1683906580 {
		t.Fatalf("expected 1683906580, got %d", u.Time().Unix())
	}
}

func TestUnix_UnmarshalNull(t *testing.T) {
	var u Unix
	if err := json.Unmarshal([]byte("null"), &u); err != nil {
		t.Fatal(err)
	}
	if !u.IsZero() {
		t.Fatal("expected zero time for null")
	}
}

func TestUnix_UnmarshalRejectsString(t *testing.T) {
	var u Unix
	if err := json.Unmarshal([]byte(`"1683906580"`), &u); err == nil {
		t.Fatal("expected error for string input")
	}
}

func TestSeconds_MarshalJSON(t *testing.T) {
	s := Seconds(3600 * time.Second)
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "3600" {
		t.Fatalf("expected 3600, got %s", b)
	}
}

func TestSeconds_UnmarshalJSON(t *testing.T) {
	var s Seconds
	if err := json.Unmarshal([]byte("3600"), &s); err != nil {
		t.Fatal(err)
	}
	if s.Duration() != time.Hour {
		t.Fatalf("expected 1h, got %s", s)
	}
}

func TestSeconds_RoundTripInStruct(t *testing.T) {
	type payload struct {
		ExpiresIn  Seconds `json:"expires_in"`
		Expiration Unix    `json:"expiration"`
	}
	in := `{"expires_in":3600,"expiration":1683906580}`
	var p payload
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatal(err)
	}
	if p.ExpiresIn.Duration() != time.Hour {
		t.Fatalf("expires_in: got %s", p.ExpiresIn)
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Fatalf("round trip mismatch: %s", out)
	}
}
