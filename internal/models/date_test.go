package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-09-01"` {
		t.Fatalf("marshal = %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip: %v != %v", back, d)
	}
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	for _, in := range []string{`"2026-13-01"`, `"not-a-date"`, `20260901`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("unmarshal %s: want error", in)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-02-28" {
		t.Fatalf("String() = %q", d.String())
	}
	if _, err := ParseDate("28/02/2025"); err == nil {
		t.Fatal("wrong layout accepted")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-01-02" {
		t.Fatalf("scan time.Time: %q", d.String())
	}

	if err := d.Scan("2026-03-04"); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-03-04" {
		t.Fatalf("scan string: %q", d.String())
	}

	if err := d.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Fatal("scan nil should zero the date")
	}

	if err := d.Scan(42); err == nil {
		t.Fatal("scan int should fail")
	}
}
